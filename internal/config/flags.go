package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/lockbox/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   store driver: sqlite, file or memory
//	-p string   store path (database or JSON file)
//	-s string   master password hash scheme: legacy or bcrypt
//	-l string   log level
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreDriver, "d", cfg.StoreDriver, "store driver (sqlite, file, memory)")
	fs.StringVar(&cfg.StorePath, "p", cfg.StorePath, "store path")
	fs.StringVar(&cfg.HashScheme, "s", cfg.HashScheme, "hash scheme (legacy, bcrypt)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
