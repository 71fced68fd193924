package splitmix

import "gonum.org/v1/gonum/mathext/prng"

// SeedXoshiro256starstar returns a gonum Xoshiro256** seeded from the next value of g.
func SeedXoshiro256starstar(g *SplitMix64) *prng.Xoshiro256starstar {
	return prng.NewXoshiro256starstar(g.Uint64())
}

// SeedMT19937_64 returns a gonum 64-bit Mersenne Twister seeded from the next value of g.
func SeedMT19937_64(g *SplitMix64) *prng.MT19937_64 {
	var mt = prng.NewMT19937_64()
	mt.Seed(g.Uint64())
	return mt
}
