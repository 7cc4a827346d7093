package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMissingConfiguration means the authority address or anon key is unset.
// The client cannot be constructed without them.
var ErrMissingConfiguration = errors.New("missing authority configuration")

// Config holds runtime settings for the instabids CLI.
//
// Fields:
//   - AuthorityAddr: host:port of the authority's gRPC endpoint.
//   - AnonKey: public API key sent with every call.
//   - DatabasePath: SQLite file backing local storage.
//   - RequestTimeout: upper bound for a single unary call.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	AuthorityAddr  string        `env:"INSTABIDS_AUTHORITY_ADDR"`
	AnonKey        string        `env:"INSTABIDS_ANON_KEY"`
	DatabasePath   string        `env:"INSTABIDS_DATABASE_PATH"`
	RequestTimeout time.Duration `env:"INSTABIDS_REQUEST_TIMEOUT"`
	LogLevel       string        `env:"INSTABIDS_LOG_LEVEL"`
}

// LoadDefaults populates c with defaults. AnonKey has none.
func (c *Config) LoadDefaults() {
	c.AuthorityAddr = "127.0.0.1:50051"
	c.DatabasePath = "instabids.db"
	c.RequestTimeout = 12 * time.Second
	c.LogLevel = "info"
}

// Validate reports ErrMissingConfiguration naming every absent setting.
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.AuthorityAddr) == "" {
		missing = append(missing, "authority address")
	}
	if strings.TrimSpace(c.AnonKey) == "" {
		missing = append(missing, "anon key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfiguration, strings.Join(missing, ", "))
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
