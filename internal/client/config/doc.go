// Package config loads runtime configuration for the instabids CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. INSTABIDS_* environment variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   address:port of the authority
//	-k string   anon key
//	-d string   local database path
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "authority_addr": "127.0.0.1:50051",
//	  "anon_key": "public-anon-key",
//	  "database_path": "instabids.db",
//	  "request_timeout": "12s",
//	  "log_level": "info"
//	}
//
// Call (*Config).Validate before constructing the remote client: a missing
// address or anon key yields ErrMissingConfiguration.
package config
