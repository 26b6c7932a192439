package ext

import (
	"math/rand"
	"time"
)

// source is the process-wide generator Rand and Shuffle draw from,
// time-seeded at startup.
var source = rand.New(rand.NewSource(time.Now().UnixNano()))

// SetSource replaces the package-wide random source, e.g. with a fixed-seed
// generator when a run must be reproducible. Not safe to call concurrently
// with Rand or Shuffle.
func SetSource(r *rand.Rand) {
	source = r
}

// Rand returns one element of items chosen uniformly at random. It panics on
// an empty slice; the failure comes straight from the random primitive.
func Rand[T any](items []T) T {
	return RandFrom(source, items)
}

// RandFrom is Rand drawing from an explicit generator.
func RandFrom[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// Shuffle permutes items in place.
func Shuffle[T any](items []T) {
	ShuffleFrom(source, items)
}

// ShuffleFrom is Shuffle drawing from an explicit generator.
func ShuffleFrom[T any](r *rand.Rand, items []T) {
	r.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
