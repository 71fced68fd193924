// Package splitmix implements the SplitMix64 generator: a 64-bit Weyl sequence finalized by an
// xor-shift-multiply avalanche mixer. The output is fast and reproducible but trivially
// predictable, so it must never be used for cryptographic purposes.
package splitmix

import (
	"fmt"
	"math/big"
)

// GoldenGamma is the odd Weyl increment. Being odd, repeated addition visits every
// residue modulo 2^64 before repeating.
const GoldenGamma uint64 = 0x9e3779b97f4a7c15

const (
	mixMultiplier1 uint64 = 0xbf58476d1ce4e5b9
	mixMultiplier2 uint64 = 0x94d049bb133111eb
)

const floatUnit = 1.0 / (1 << 53)

// SplitMix64 holds the generator state. It is not safe for concurrent use: guard a shared
// instance with a mutex, or give each goroutine its own generator (see Split).
type SplitMix64 struct {
	state uint64
}

func New(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// NewFromInt64 reinterprets seed as two's complement, so -1 seeds the same stream as
// math.MaxUint64.
func NewFromInt64(seed int64) *SplitMix64 {
	return New(uint64(seed))
}

// NewFromBig reduces an arbitrary integer seed modulo 2^64.
func NewFromBig(seed *big.Int) (*SplitMix64, error) {
	if seed == nil {
		return nil, fmt.Errorf("splitmix.NewFromBig: nil seed: %w", ErrInvalidArgument)
	}
	var modulus = new(big.Int).Lsh(big.NewInt(1), 64)
	var reduced = new(big.Int).Mod(seed, modulus)
	return New(reduced.Uint64()), nil
}

// Mix is the SplitMix64 finalizer. It is a bijection on uint64.
func Mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * mixMultiplier1
	z = (z ^ (z >> 27)) * mixMultiplier2
	return z ^ (z >> 31)
}

// Step is the transition as a pure function: it returns the advanced state and the value
// produced from it.
func Step(state uint64) (next, out uint64) {
	next = state + GoldenGamma
	return next, Mix(next)
}

func (s *SplitMix64) Uint64() uint64 {
	var out uint64
	s.state, out = Step(s.state)
	return out
}

// Uint64n returns a value in [0, n) using plain modulo reduction. Values are biased toward
// the low end when n does not divide 2^64; the golden sequences depend on this exact method.
func (s *SplitMix64) Uint64n(n uint64) (uint64, error) {
	if n == 0 {
		return 0, fmt.Errorf("splitmix.Uint64n: bound must be positive, got 0: %w", ErrInvalidArgument)
	}
	return s.Uint64() % n, nil
}

// Intn is Uint64n for int bounds. The state is left untouched when n <= 0.
func (s *SplitMix64) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("splitmix.Intn: bound must be positive, got %d: %w", n, ErrInvalidArgument)
	}
	return int(s.Uint64() % uint64(n)), nil
}

// Float64 returns the top 53 bits of the next value scaled into [0, 1).
func (s *SplitMix64) Float64() float64 {
	return toFloat64(s.Uint64())
}

func toFloat64(x uint64) float64 {
	return float64(x>>11) * floatUnit
}

// Split returns a new generator seeded with the next value of s.
func (s *SplitMix64) Split() *SplitMix64 {
	return New(s.Uint64())
}
