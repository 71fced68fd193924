// Package demo prints the opening values of a seeded SplitMix64 stream.
package demo

import (
	"fmt"
	"io"

	"github.com/fernandosanchezjr/splitmix64/config"
	"github.com/fernandosanchezjr/splitmix64/splitmix"
)

// Write prints cfg.Count raw values, then the optional bounded and float sections. Each
// section starts from a fresh generator so its values line up with the raw listing. It
// returns the number of values written.
func Write(w io.Writer, cfg *config.Config) (int, error) {
	var written int
	if _, err := fmt.Fprintf(w, "Seed = %d\n", cfg.Seed); err != nil {
		return written, err
	}
	if _, err := fmt.Fprintf(w, "First %d outputs (hex and decimal):\n", cfg.Count); err != nil {
		return written, err
	}
	g := splitmix.New(cfg.Seed)
	for i := 1; i <= cfg.Count; i++ {
		x := g.Uint64()
		if _, err := fmt.Fprintf(w, "%2d) 0x%016x  ->  %d\n", i, x, x); err != nil {
			return written, err
		}
		written++
	}
	if cfg.Bound != 0 {
		n, err := writeBounded(w, cfg)
		written += n
		if err != nil {
			return written, err
		}
	}
	if cfg.Floats {
		n, err := writeFloats(w, cfg)
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func writeBounded(w io.Writer, cfg *config.Config) (int, error) {
	var written int
	// Checked up front so an invalid bound is reported even when Count is zero.
	if _, err := splitmix.New(cfg.Seed).Intn(cfg.Bound); err != nil {
		return written, err
	}
	if _, err := fmt.Fprintf(w, "First %d integers below %d:\n", cfg.Count, cfg.Bound); err != nil {
		return written, err
	}
	g := splitmix.New(cfg.Seed)
	for i := 1; i <= cfg.Count; i++ {
		v, err := g.Intn(cfg.Bound)
		if err != nil {
			return written, err
		}
		if _, err = fmt.Fprintf(w, "%2d) %d\n", i, v); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func writeFloats(w io.Writer, cfg *config.Config) (int, error) {
	var written int
	if _, err := fmt.Fprintf(w, "First %d floats in [0, 1):\n", cfg.Count); err != nil {
		return written, err
	}
	g := splitmix.New(cfg.Seed)
	for i := 1; i <= cfg.Count; i++ {
		if _, err := fmt.Fprintf(w, "%2d) %v\n", i, g.Float64()); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}
