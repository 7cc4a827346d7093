// Package common contains shared constants and sentinel errors used across
// Instabids components.
package common

// APIKeyHeaderName is the gRPC metadata key carrying the project's anon key.
// Every call to the authority must present it.
const APIKeyHeaderName = "apikey"

// AuthorizationHeaderName is the gRPC metadata key carrying the bearer access
// token on authenticated calls.
const AuthorizationHeaderName = "authorization"

// BearerPrefix prefixes the access token inside AuthorizationHeaderName.
const BearerPrefix = "Bearer "

// Local storage keys. Each key is a single-writer namespace.
const (
	AuthStorageKey    = "auth-storage"
	ThemeStorageKey   = "theme-storage"
	SessionStorageKey = "auth-session"
)
