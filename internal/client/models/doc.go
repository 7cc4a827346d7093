// Package models defines the client-side data shapes of Instabids: the
// session-relevant user and profile records, the remote auth session, the
// realtime change event, and the marketplace records that are only carried,
// never acted upon, by the client.
package models
