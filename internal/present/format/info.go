package format

import (
	"time"

	"github.com/mithrel/minid/pkg/minid"
)

// Info is the exported view of one ID.
type Info struct {
	ID        minid.ID   `json:"id"`
	Hex       string     `json:"hex"`
	Seed      uint32     `json:"seed"`
	Time      time.Time  `json:"time"`
	Hash      uint64     `json:"hash"`
	Label     string     `json:"label,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Describe breaks id down into its parts.
func Describe(id minid.ID) Info {
	return Info{
		ID:   id,
		Hex:  id.Hex(),
		Seed: id.Seed().Value(),
		Time: id.Time(),
		Hash: id.Hash(),
	}
}
