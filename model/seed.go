package model

import (
	"math/rand"

	"github.com/sheikhrachel/go-life/rules"
)

// ReferenceDensity is the probability of a live cell used by the original demos
const ReferenceDensity = 0.5

// SeedSource yields the initial value of one cell per call
type SeedSource func() uint8

// BernoulliSource returns a source that yields a live cell with probability p
func BernoulliSource(rng *rand.Rand, p float64) SeedSource {
	return func() uint8 {
		if rng.Float64() < p {
			return rules.Alive
		}
		return rules.Dead
	}
}

// ConstSource returns a source that always yields v
func ConstSource(v uint8) SeedSource {
	return func() uint8 { return v }
}
