package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.AuthorityAddr)
	assert.Equal(t, "instabids.db", c.DatabasePath)
	assert.Equal(t, 12*time.Second, c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.AnonKey)
}

func TestLoadConfig_Layers(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"authority_addr": "json:1",
		"anon_key":       "json-key",
		"database_path":  "json.db",
	})
	t.Setenv("INSTABIDS_ANON_KEY", "env-key")
	t.Setenv("INSTABIDS_DATABASE_PATH", "env.db")

	os.Args = []string{"testbin", "-c", path, "-d", "flag.db"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "json:1", cfg.AuthorityAddr, "json overrides defaults")
	assert.Equal(t, "env-key", cfg.AnonKey, "env overrides json")
	assert.Equal(t, "flag.db", cfg.DatabasePath, "flags override env")
	assert.Equal(t, 12*time.Second, cfg.RequestTimeout)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("INSTABIDS_AUTHORITY_ADDR", "env:50051")
	t.Setenv("INSTABIDS_REQUEST_TIMEOUT", "5s")

	cfg := &Config{AnonKey: "kept"}
	parseEnv(cfg)

	assert.Equal(t, "env:50051", cfg.AuthorityAddr)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "kept", cfg.AnonKey, "unset variables leave values alone")
}

func TestParseEnv_Malformed(t *testing.T) {
	t.Setenv("INSTABIDS_REQUEST_TIMEOUT", "soon")
	require.Panics(t, func() { parseEnv(&Config{}) })
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		msg     string
	}{
		{name: "complete", cfg: Config{AuthorityAddr: "a:1", AnonKey: "k"}},
		{name: "no key", cfg: Config{AuthorityAddr: "a:1"}, wantErr: true, msg: "anon key"},
		{name: "no address", cfg: Config{AnonKey: "k"}, wantErr: true, msg: "authority address"},
		{name: "blank both", cfg: Config{AuthorityAddr: " ", AnonKey: ""}, wantErr: true, msg: "authority address, anon key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrMissingConfiguration)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
