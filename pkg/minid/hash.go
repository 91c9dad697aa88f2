package minid

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Hash returns a 64-bit BLAKE3 digest of the raw bytes. Equal IDs always hash
// equally, and the value is the same on every process and architecture, so it
// can be used for sharding or partition keys. ID itself is comparable and can
// be used directly as a map key.
func (i ID) Hash() uint64 {
	sum := blake3.Sum256(i[:])
	return binary.BigEndian.Uint64(sum[:8])
}
