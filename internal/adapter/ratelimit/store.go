package ratelimit

import (
	"context"
	"time"
)

// Result is the outcome of one hit against a fixed window.
type Result struct {
	Allowed   bool
	Remaining int
	ResetTime time.Time
}

// Store counts hits per key within fixed windows.
type Store interface {
	Hit(ctx context.Context, key string, limit int, window time.Duration) (Result, error)
}
