package middleware

import (
	"tailortalk/config"
	"tailortalk/pkg/log"
)

type Middleware struct {
	l           log.Logger
	corsConfig  config.CORSConfig
	rateLimiter *clientRateLimiter
}

func New(l log.Logger, corsConfig config.CORSConfig, rateLimitConfig config.RateLimitConfig) Middleware {
	return Middleware{
		l:           l,
		corsConfig:  corsConfig,
		rateLimiter: newClientRateLimiter(rateLimitConfig),
	}
}
