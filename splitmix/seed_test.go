package splitmix

import (
	"testing"
)

func TestSeedXoshiro256starstar(t *testing.T) {
	parent := New(goldenSeed)
	a := SeedXoshiro256starstar(parent)
	b := SeedXoshiro256starstar(New(goldenSeed))
	for i := 0; i < 16; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("xoshiro streams diverged at %d", i)
		}
	}
	if got := parent.Uint64(); got != goldenValues[1] {
		t.Errorf("parent not advanced once: %x", got)
	}
}

func TestSeedMT19937_64(t *testing.T) {
	a := SeedMT19937_64(New(goldenSeed))
	b := SeedMT19937_64(New(goldenSeed))
	c := SeedMT19937_64(New(goldenSeed + 1))
	var differs bool
	for i := 0; i < 16; i++ {
		x := a.Uint64()
		if y := b.Uint64(); x != y {
			t.Fatalf("mt streams diverged at %d", i)
		}
		if x != c.Uint64() {
			differs = true
		}
	}
	if !differs {
		t.Error("different seeds produced identical streams")
	}
}
