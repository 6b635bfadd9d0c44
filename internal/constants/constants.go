package constants

type contextKey string

const (
	// RequestIDKey request context內request id的key
	RequestIDKey contextKey = "request_id"
)
