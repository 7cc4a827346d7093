package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/instabids/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the authority
//	-k string   anon key
//	-d string   path to the local database
//	-t int      request timeout in seconds
//	-l string   log level
//
// Only the flags listed above are parsed; everything else in os.Args is
// ignored.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthorityAddr, "a", cfg.AuthorityAddr, "address and port of the authority")
	fs.StringVar(&cfg.AnonKey, "k", cfg.AnonKey, "anon key")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
