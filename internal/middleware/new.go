package middleware

import (
	"task-tracker/pkg/log"
)

// Config is the dependency bag for New.
type Config struct {
	Limiter        Limiter // nil disables rate limiting
	Metrics        *Metrics
	AllowedOrigins []string // empty allows any origin
}

type Middleware struct {
	l              log.Logger
	limiter        Limiter
	metrics        *Metrics
	allowedOrigins map[string]struct{}
}

func New(l log.Logger, cfg Config) Middleware {
	origins := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		origins[o] = struct{}{}
	}
	return Middleware{
		l:              l,
		limiter:        cfg.Limiter,
		metrics:        cfg.Metrics,
		allowedOrigins: origins,
	}
}
