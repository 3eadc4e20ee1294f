package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// NewRand returns a freshly seeded PCG source. Each generation run
// that does not inject its own randomness gets one of these; there is
// no shared process-wide generator.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
