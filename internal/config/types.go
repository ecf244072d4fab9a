package config

import "time"

// immutable process configuration, read once at startup
type Config struct {
	Port            string
	Environment     string
	GenerationDelay time.Duration
	RateLimit       int64
	RateLimitWindow time.Duration
	MaxBodyBytes    int64
	AllowedOrigins  []string
	TrustedProxies  []string
}

// reports whether error details may be exposed to clients
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// response write deadline; always leaves the full budget after the simulated delay
func (c *Config) WriteTimeout() time.Duration {
	return c.GenerationDelay + DefaultWriteBudget
}
