// Package cli provides the interactive Instabids command-line client.
//
// It wires configuration, local storage, the authority client, the session
// store and its bridge behind a REPL. The session bridge keeps the store in
// step with the remote session, so a login restored from a previous run is
// picked up without prompting.
//
// Key features:
//   - Signup / Verify / Login / Logout
//   - Profile display and partial updates, avatar upload
//   - Realtime watches on tables such as bids and auctions
//   - Theme preference
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
