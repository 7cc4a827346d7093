// Package session keeps the client's view of who is signed in.
//
// Store holds the current user and the authenticated and loading flags. It
// changes only through Login, Signup, Logout and UpdateProfile, each of which
// performs one round trip to the authority, plus Reconcile, which the Bridge
// uses to adopt a session the authority already knows about. Every change of
// the user or the authenticated flag is written to the local kv store under
// common.AuthStorageKey, so the last known user survives restarts.
//
// Bridge connects a Store to the remote session feed: at start it adopts any
// existing session, then follows sign-in, sign-out and refresh notifications
// until it is closed.
package session
