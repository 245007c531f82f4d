package conversation

import "time"

const (
	DefaultMaxHistory  = 20
	DefaultSessionTTL  = 30 * time.Minute
	DefaultMaxSessions = 10000
)

// Replies for routes without a handler.
const (
	SQLNotImplemented     = "SQL router not yet implemented."
	RouteNotImplementedFm = "Route '%s' not implemented yet."
)

const (
	LogPrefixHandle = "internal.conversation.Handle"
)
