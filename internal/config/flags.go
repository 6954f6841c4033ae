package config

import (
	"flag"
	"os"
	"time"

	"github.com/hbridge/careconnect-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   backend base URL (default from earlier stages)
//	-t int      request timeout in seconds
//	-d string   path to the local database file
//	-l string   log level
//
// os.Args is filtered to only the flags handled here, so the config-file
// flag parsed elsewhere does not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend base URL")
	timeoutSecs := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to local database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *timeoutSecs > 0 {
		cfg.RequestTimeout = time.Duration(*timeoutSecs) * time.Second
	}
}
