package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/instabids/internal/flagx"
	"github.com/dmitrijs2005/instabids/internal/timex"
)

// JsonConfig is a DTO used only for JSON unmarshalling. Durations go through
// timex.Duration so they can be written as "12s" or as nanoseconds.
type JsonConfig struct {
	AuthorityAddr  string         `json:"authority_addr"`
	AnonKey        string         `json:"anon_key"`
	DatabasePath   string         `json:"database_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays Config with the file named by -c or -config. Fields
// absent from the file keep their current value. Panics on read or decode
// errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AuthorityAddr != "" {
		cfg.AuthorityAddr = jc.AuthorityAddr
	}
	if jc.AnonKey != "" {
		cfg.AnonKey = jc.AnonKey
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
