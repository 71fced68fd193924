package main

import (
	"flag"
	"os"
	"runtime/pprof"

	"github.com/dustin/go-humanize"
	"github.com/fernandosanchezjr/splitmix64/config"
	"github.com/fernandosanchezjr/splitmix64/demo"
	"github.com/fernandosanchezjr/splitmix64/logging"
	"github.com/fernandosanchezjr/splitmix64/utils"
	log "github.com/sirupsen/logrus"
)

var cpuProfile bool
var randomSeed bool
var seed uint64
var count int
var bound int
var floats bool
var logLevel string

func init() {
	flag.BoolVar(&cpuProfile, "cpu-profile", cpuProfile, "enable cpu profiling")
	flag.BoolVar(&randomSeed, "random-seed", randomSeed, "seed from the system entropy source")
	flag.Uint64Var(&seed, "seed", config.DefaultSeed, "generator seed")
	flag.IntVar(&count, "count", config.DefaultCount, "number of values to print")
	flag.IntVar(&bound, "bound", 0, "also print integers in [0, bound)")
	flag.BoolVar(&floats, "floats", floats, "also print floats in [0, 1)")
	flag.StringVar(&logLevel, "log-level", "info", "log level")
}

// applyFlags overrides config values with the flags given explicitly on the command line.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = seed
		case "count":
			cfg.Count = count
		case "bound":
			cfg.Bound = bound
		case "floats":
			cfg.Floats = floats
		case "log-level":
			cfg.LogLevel = logLevel
		}
	})
	if randomSeed {
		cfg.Seed = utils.RandomUint64()
	}
}

func main() {
	flag.Parse()
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatal(err)
	}
	applyFlags(cfg)
	if err = cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if err = logging.SetupLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatal(err)
	}
	defer logging.Close()
	if cpuProfile {
		f, err := os.Create("splitmix64.prof")
		if err != nil {
			log.Fatal(err)
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}
	written, err := demo.Write(os.Stdout, cfg)
	if err != nil {
		log.WithError(err).Error("Demo failed")
		logging.Close()
		os.Exit(1)
	}
	logSummary(cfg.Seed, written)
}

func logSummary(seed uint64, written int) {
	log.WithFields(log.Fields{
		"seed":   seed,
		"values": humanize.Comma(int64(written)),
	}).Info("Done")
}
