package minid

import (
	"encoding/binary"
	"time"
)

// SeedSize is the number of bytes a Seed occupies at the front of an ID.
const SeedSize = 4

// now is the clock used by SeedFromTime. Callers that need a fixed clock
// use a Generator built WithClock.
var now = time.Now

// Seed is the time-derived prefix of an ID.
type Seed struct {
	value uint32
}

// NewSeed wraps an explicit value. Every uint32 is valid.
func NewSeed(value uint32) Seed { return Seed{value: value} }

// SeedFromTime returns the seconds elapsed since the Unix epoch, wrapped into
// 32 bits. Behaviour when the wall clock steps backwards is unspecified.
func SeedFromTime() Seed { return seedAt(now()) }

func seedAt(t time.Time) Seed { return Seed{value: uint32(t.Unix())} }

// Value returns the raw seed.
func (s Seed) Value() uint32 { return s.value }

// Bytes returns the seed in network byte order.
func (s Seed) Bytes() [SeedSize]byte {
	var b [SeedSize]byte
	binary.BigEndian.PutUint32(b[:], s.value)
	return b
}

// Time returns the instant the seed denotes, in UTC. Seeds taken after the
// 32-bit wrap map back into the first epoch.
func (s Seed) Time() time.Time { return time.Unix(int64(s.value), 0).UTC() }
