// Package changefeed holds the row filter grammar shared by the client's
// channel subscriptions and the authority's change hub.
package changefeed
