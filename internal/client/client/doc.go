// Package client contains the client-side connection to the instabids
// authority.
//
// # Overview
//
// The package provides:
//  1. The Client interface: auth (sign in/up/out, session, email
//     verification), profile reads and updates, presigned uploads and realtime
//     channels.
//  2. GRPCClient, the gRPC implementation. It keeps the remote session in
//     memory and in the local kv store, injects the anon key and bearer token
//     via interceptors, refreshes expired tokens transparently (one refresh in
//     flight at a time) and maps gRPC status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens the
//     SQLite database and applies the embedded goose migrations.
//
// # Error Handling
//
// Authority failures are returned as *RemoteError carrying the status code
// and message. Its Kind is one of ErrUnauthorized, ErrForbidden, ErrNotFound,
// ErrAlreadyExists, ErrInvalidArgument, ErrUnavailable, ErrInvalidCredentials
// or ErrEmailNotConfirmed, so callers can match with errors.Is.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. Auth-state listeners are invoked
// from a single goroutine in emission order.
package client
