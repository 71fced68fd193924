package splitmix

import "math/rand"

var _ rand.Source = (*Source)(nil)
var _ rand.Source64 = (*Source)(nil)

// Source adapts a SplitMix64 stream to math/rand so it can drive a *rand.Rand.
type Source struct {
	generator SplitMix64
}

func NewSource(seed int64) *Source {
	return &Source{generator: SplitMix64{state: uint64(seed)}}
}

// NewRand returns a *rand.Rand backed by a SplitMix64 Source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(NewSource(seed))
}

// Seed restarts the stream as if constructed with NewFromInt64(seed).
func (src *Source) Seed(seed int64) {
	src.generator.state = uint64(seed)
}

func (src *Source) Uint64() uint64 {
	return src.generator.Uint64()
}

func (src *Source) Int63() int64 {
	return int64(src.generator.Uint64() >> 1)
}
