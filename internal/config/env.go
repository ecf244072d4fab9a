package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DefaultPort            = "5000"
	DefaultGenerationDelay = 1500 * time.Millisecond
	DefaultRateLimit       = 100
	DefaultRateLimitWindow = 15 * time.Minute
	DefaultMaxBodyBytes    = 100 << 10

	// time to write a response once generation has finished
	DefaultWriteBudget = 15 * time.Second
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return FromLookup(os.LookupEnv)
}

// builds a config from an arbitrary lookup function (os.LookupEnv in production)
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	port := get("PORT")
	if port == "" {
		port = DefaultPort
	}

	if n, err := strconv.Atoi(port); err != nil || n <= 0 || n > 65535 {
		return nil, fmt.Errorf("PORT must be a valid port number, got %q", port)
	}

	environment := get("ENVIRONMENT")
	if environment == "" {
		environment = EnvProduction
	}

	delay, err := parseDuration(get("GENERATION_DELAY"), DefaultGenerationDelay)
	if err != nil {
		return nil, fmt.Errorf("GENERATION_DELAY: %w", err)
	}

	window, err := parseDuration(get("RATE_LIMIT_WINDOW"), DefaultRateLimitWindow)
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW: %w", err)
	}

	if window == 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}

	rateLimit, err := parsePositiveInt(get("RATE_LIMIT"), DefaultRateLimit)
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT: %w", err)
	}

	maxBody, err := parsePositiveInt(get("MAX_BODY_BYTES"), DefaultMaxBodyBytes)
	if err != nil {
		return nil, fmt.Errorf("MAX_BODY_BYTES: %w", err)
	}

	origins := splitList(get("ALLOWED_ORIGINS"))
	if len(origins) == 1 && origins[0] == "*" {
		origins = nil
	}

	for _, o := range origins {
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return nil, fmt.Errorf("ALLOWED_ORIGINS: origin %q must start with http:// or https://", o)
		}
	}

	return &Config{
		Port:            port,
		Environment:     environment,
		GenerationDelay: delay,
		RateLimit:       rateLimit,
		RateLimitWindow: window,
		MaxBodyBytes:    maxBody,
		AllowedOrigins:  origins,
		TrustedProxies:  splitList(get("TRUSTED_PROXIES")),
	}, nil
}

func parseDuration(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", raw, err)
	}

	if d < 0 {
		return 0, fmt.Errorf("duration must not be negative, got %s", d)
	}

	return d, nil
}

func parsePositiveInt(raw string, fallback int64) (int64, error) {
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", raw, err)
	}

	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}

	return n, nil
}

// splits a comma-separated list, dropping blanks
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
