package port

import "context"

type HealthChecker interface {
	PingContext(ctx context.Context) error
}
