package config

import "fmt"

const (
	DefaultSeed  uint64 = 20251230
	DefaultCount        = 10
)

type Config struct {
	Seed     uint64 `yaml:"seed"`
	Count    int    `yaml:"count"`
	Bound    int    `yaml:"bound,omitempty"`
	Floats   bool   `yaml:"floats,omitempty"`
	LogLevel string `yaml:"logLevel,omitempty"`
	LogFile  bool   `yaml:"logFile,omitempty"`
}

func Default() *Config {
	return &Config{
		Seed:     DefaultSeed,
		Count:    DefaultCount,
		LogLevel: "info",
	}
}

// Validate checks driver settings only. Bound is handed to the generator as is so that a
// non-positive bound reports the generator's own error.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("config: count must not be negative, got %d", c.Count)
	}
	return nil
}
