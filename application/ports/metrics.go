package ports

import "context"

// MetricsPublisher publishes best-effort operational counters. Failures are
// logged and swallowed; metrics never fail a request.
type MetricsPublisher interface {
	Increment(ctx context.Context, name string)
}
