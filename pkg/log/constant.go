package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// ctxKey is the private type for values this package reads from a context.
type ctxKey string

const (
	// RequestIDKey carries the request or session identifier attached to every log line.
	RequestIDKey ctxKey = "request_id"
)
