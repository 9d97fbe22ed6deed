package ratelimit

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the limit applied to one route. A Path ending in "/"
// matches by prefix, so "/analyze/" covers every analysis endpoint.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int // requests per Window; 0 means unlimited
	Window time.Duration
	Burst  int // bucket capacity; defaults to Limit when 0
}

// unlimited is returned for routes that are never throttled.
var unlimited = EndpointConfig{}

// defaultEndpoints tiers the API by cost. Generation and analysis burn LLM
// or fetch quota, so they get hourly budgets; credential endpoints get tight
// per-minute limits against brute forcing; plain writes sit in between.
// Reads fall through to the default limit.
var defaultEndpoints = []EndpointConfig{
	{Path: "/analyze/", Method: http.MethodPost, Limit: 60, Window: time.Hour, Burst: 10},
	{Path: "/cover-letters", Method: http.MethodPost, Limit: 30, Window: time.Hour, Burst: 5},
	{Path: "/portfolios", Method: http.MethodPost, Limit: 30, Window: time.Hour, Burst: 5},

	{Path: "/auth/login", Method: http.MethodPost, Limit: 20, Window: time.Minute, Burst: 5},
	{Path: "/auth/register", Method: http.MethodPost, Limit: 20, Window: time.Minute, Burst: 5},

	{Path: "/resumes", Method: http.MethodPost, Limit: 100, Window: time.Minute, Burst: 10},
	{Path: "/resumes/", Method: http.MethodPost, Limit: 100, Window: time.Minute, Burst: 10},
	{Path: "/resumes/", Method: http.MethodPut, Limit: 100, Window: time.Minute, Burst: 10},
	{Path: "/resumes/", Method: http.MethodDelete, Limit: 100, Window: time.Minute, Burst: 10},
	{Path: "/cover-letters/", Method: http.MethodDelete, Limit: 100, Window: time.Minute, Burst: 10},
	{Path: "/portfolios/", Method: http.MethodDelete, Limit: 100, Window: time.Minute, Burst: 10},
}

// DefaultEndpointConfigs returns a copy of the built-in endpoint tiers.
func DefaultEndpointConfigs() []EndpointConfig {
	out := make([]EndpointConfig, len(defaultEndpoints))
	copy(out, defaultEndpoints)
	return out
}

// LoadConfig reads the limiter configuration from the environment. With
// RATE_LIMIT_ENABLED=false every request passes through untouched.
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       splitIPs(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       splitIPs(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// MatchEndpoint resolves the limit for a path and method. Health checks are
// never limited; exact path matches win over prefix matches; nil means the
// caller should apply the default limit.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == http.MethodGet {
		return &unlimited
	}

	var prefixed *EndpointConfig
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method {
			continue
		}
		if cfg.Path == path {
			return cfg
		}
		if prefixed == nil && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			prefixed = cfg
		}
	}
	return prefixed
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// splitIPs parses a comma-separated IP list into a membership set.
func splitIPs(list string) map[string]bool {
	set := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			set[ip] = true
		}
	}
	return set
}
