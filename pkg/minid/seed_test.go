package minid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeed_Bytes(t *testing.T) {
	t.Run("network byte order", func(t *testing.T) {
		seed := NewSeed(10<<24 | 20<<16 | 30<<8 | 40)
		assert.Equal(t, [4]byte{0x0A, 0x14, 0x1E, 0x28}, seed.Bytes())
	})

	t.Run("extremes", func(t *testing.T) {
		assert.Equal(t, [4]byte{0, 0, 0, 0}, NewSeed(0).Bytes())
		assert.Equal(t, [4]byte{0xFF, 0xFF, 0xFF, 0xFF}, NewSeed(^uint32(0)).Bytes())
	})
}

func TestSeedFromTime(t *testing.T) {
	defer func() { now = time.Now }()

	t.Run("whole seconds since epoch", func(t *testing.T) {
		now = func() time.Time { return time.Unix(1_700_000_000, 999_999_999) }
		assert.Equal(t, uint32(1_700_000_000), SeedFromTime().Value())
	})

	t.Run("wraps into 32 bits", func(t *testing.T) {
		now = func() time.Time { return time.Unix(1<<32+5, 0) }
		assert.Equal(t, uint32(5), SeedFromTime().Value())
	})

	t.Run("non-decreasing on the real clock", func(t *testing.T) {
		now = time.Now
		a := SeedFromTime()
		b := SeedFromTime()
		assert.LessOrEqual(t, a.Value(), b.Value())
	})
}

func TestSeed_Time(t *testing.T) {
	seed := NewSeed(1_700_000_000)
	assert.Equal(t, time.Unix(1_700_000_000, 0).UTC(), seed.Time())
}
