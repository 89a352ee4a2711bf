package game

import "math/rand"

// RandSource supplies the randomness used for food placement
type RandSource interface {
	// Intn returns a non-negative pseudo-random number in [0,n)
	Intn(n int) int
}

// NewRandSource returns a math/rand backed source. Hosts create one per
// process, seeded at start-up.
func NewRandSource(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}
