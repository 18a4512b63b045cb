package log

type ctxKey string

const (
	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"

	// TraceIDKey carries a per-turn id through context; the logger attaches it as trace_id.
	TraceIDKey ctxKey = "trace_id"
)
