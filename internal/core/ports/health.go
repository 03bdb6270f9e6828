package ports

import "context"

// HealthChecker reports the availability of a backing dependency.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
