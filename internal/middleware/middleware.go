package middleware

import (
	"context"
	"time"

	"github.com/entropass/entropass/internal/config"
	"github.com/entropass/entropass/internal/logger"
)

// Counter counts hits on a key within a window. *database.Redis implements it.
type Counter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// Middleware holds all HTTP middleware
type Middleware struct {
	counter Counter
	log     *logger.Logger
	cfg     *config.Config
}

// New creates a new Middleware instance. counter may be nil when rate
// limiting is disabled.
func New(counter Counter, log *logger.Logger, cfg *config.Config) *Middleware {
	return &Middleware{
		counter: counter,
		log:     log,
		cfg:     cfg,
	}
}
