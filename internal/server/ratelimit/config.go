package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Endpoint is a per-route limit. Paths ending in "/" prefix-match.
type Endpoint struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Endpoints       []Endpoint
}

// LoadConfig reads limiter settings from the environment.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Endpoints:       defaultEndpoints(),
	}
}

func defaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Endpoints:       defaultEndpoints(),
	}
}

// defaultEndpoints tiers the routes. Matching and recommendations can
// trigger AI calls so they get the strictest limits; auth endpoints are
// throttled against credential stuffing.
func defaultEndpoints() []Endpoint {
	return []Endpoint{
		{Path: "/match", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/recommend", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/auth/register", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/projects", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/teams/", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/seed", Method: "POST", Limit: 10, Window: time.Minute, Burst: 2},
	}
}

// match resolves the endpoint limit for a request. The health check is
// never limited.
func (c *Config) match(path, method string) Endpoint {
	if path == "/health" && method == "GET" {
		return Endpoint{Limit: 0}
	}

	for _, endpoint := range c.Endpoints {
		if endpoint.Path == path && endpoint.Method == method {
			return endpoint
		}
	}
	for _, endpoint := range c.Endpoints {
		if endpoint.Method == method && strings.HasSuffix(endpoint.Path, "/") &&
			strings.HasPrefix(path, endpoint.Path) {
			return endpoint
		}
	}

	return Endpoint{
		Path:   "",
		Method: method,
		Limit:  c.DefaultLimit,
		Window: c.DefaultWindow,
		Burst:  c.DefaultLimit,
	}
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
