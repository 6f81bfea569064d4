package config

import (
	"flag"
	"os"
	"time"

	"github.com/annakovaleva/blogview/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the post collection resource
//	-s string   sqlite DSN of the local client database
//	-m string   path of the session mirror file
//	-l int      simulated auth latency in milliseconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the post resource")
	fs.StringVar(&cfg.StorageDSN, "s", cfg.StorageDSN, "sqlite DSN of the local database")
	fs.StringVar(&cfg.MirrorPath, "m", cfg.MirrorPath, "path of the session mirror file")
	authLatency := fs.Int("l", int(cfg.AuthLatency.Milliseconds()), "simulated auth latency (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AuthLatency = time.Duration(*authLatency) * time.Millisecond
}
