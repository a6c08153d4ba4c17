package sortbench

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// Generator produces the random integer datasets that trials sort.
// Each Generator owns its own ChaCha8 stream; separate generators are
// independent, but a single Generator must not be shared across
// goroutines.
type Generator struct {
	rng *rand.Rand
	min int
	max int
}

// NewGenerator returns a generator that draws values uniformly from the
// inclusive range min..max. The stream is seeded from crypto/rand;
// successive processes see different data.
func NewGenerator(min, max int) *Generator {
	var seed [32]byte
	crand.Read(seed[:]) // never fails
	return &Generator{
		rng: rand.New(rand.NewChaCha8(seed)),
		min: min,
		max: max,
	}
}

// Dataset returns a freshly allocated slice of size random values.
// Every call produces an independent slice; callers may sort it in place
// without affecting later datasets.
func (g *Generator) Dataset(size int) []int {
	data := make([]int, size)
	span := g.max - g.min + 1
	for i := range data {
		data[i] = g.min + g.rng.IntN(span)
	}
	return data
}
