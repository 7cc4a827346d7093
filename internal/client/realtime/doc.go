// Package realtime exposes change feeds of remote tables to the rest of the
// client.
//
// A feed is opened through a Channels implementation (normally the gRPC
// client) and is represented by a Subscription: a named handle whose Close
// tears the feed down exactly once. Subscribe is the convenience entry point
// used by screens and the CLI: one call opens one feed for every event type
// of a table, optionally narrowed by a "column=eq.value" filter.
package realtime
