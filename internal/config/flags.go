package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/usermap/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-n int      initial table capacity (power of two)
//	-f float    max load factor
//	-s int      salt length
//	-l string   log level (debug, info, warn, error)
//
// os.Args is first filtered down to these flags with flagx.FilterArgs, so
// -c/-config and unknown arguments do not abort parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-n", "-f", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.IntVar(&config.InitialCapacity, "n", config.InitialCapacity, "initial table capacity")
	fs.Float64Var(&config.MaxLoadFactor, "f", config.MaxLoadFactor, "max load factor")
	fs.IntVar(&config.SaltLength, "s", config.SaltLength, "salt length")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
