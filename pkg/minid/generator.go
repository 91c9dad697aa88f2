package minid

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"
)

// Generator mints IDs. It holds no mutable state and is safe for concurrent
// use as long as its random source is.
type Generator struct {
	random io.Reader
	clock  func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandom sets the random source. The reader must be safe for concurrent
// use if the Generator is shared between goroutines.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) { g.random = r }
}

// WithClock sets the clock used to derive seeds.
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) { g.clock = clock }
}

// NewGenerator creates a Generator using crypto/rand and the wall clock
// unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{random: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a new ID seeded with the current second. The zero
// Generator uses crypto/rand and the wall clock.
func (g *Generator) Generate() ID {
	seed := SeedFromTime()
	if g.clock != nil {
		seed = seedAt(g.clock())
	}
	random := g.random
	if random == nil {
		random = rand.Reader
	}
	id, err := NewWithReader(seed, random)
	if err != nil {
		panic(fmt.Sprintf("minid: random source failed: %v", err))
	}
	return id
}

// Parse decodes the text form of an ID. See the package-level Parse.
func (g *Generator) Parse(text string) (ID, error) { return Parse(text) }
