package random

import (
	"math/rand"
	"time"
)

func NewRandom() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Pick returns one element of arr with equal probability 1/len(arr).
// Panics on an empty slice; callers must check first.
func Pick[T any](rng *rand.Rand, arr []T) T {
	return arr[rng.Intn(len(arr))]
}
