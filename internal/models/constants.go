package models

const (
	// DefaultLimit caps search and reservation history results when the caller
	// passes no limit.
	DefaultLimit = 10

	// DateLayout is the wire format of reservation dates.
	DateLayout = "2006-01-02"

	// RateLimitRequests requests allowed per client in one window.
	RateLimitRequests = 60

	// RateLimitWindow window of the per-client limit, in seconds.
	RateLimitWindow = 60
)
