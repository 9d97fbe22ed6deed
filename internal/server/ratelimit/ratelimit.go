// Package ratelimit throttles API clients with per-endpoint token buckets.
// Generation and analysis endpoints get the strictest tiers since each
// request can fan out to the LLM.
package ratelimit

import (
	"sync"
	"time"
)

// staleAfter is how long an idle bucket survives before cleanup drops it.
const staleAfter = time.Hour

// bucket is a token bucket for one client+endpoint pair. Tokens refill
// continuously at rate per second up to capacity.
type bucket struct {
	mu       sync.Mutex
	capacity float64
	rate     float64
	tokens   float64
	updated  time.Time
	seen     time.Time
}

func newBucket(capacity int, rate float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity: float64(capacity),
		rate:     rate,
		tokens:   float64(capacity),
		updated:  now,
		seen:     now,
	}
}

// take refills the bucket for elapsed time, consumes a token if one is
// available, and reports the remaining count and the instant the bucket
// will be full again.
func (b *bucket) take() (allowed bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.updated).Seconds()*b.rate)
	b.updated = now
	b.seen = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		allowed = true
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.capacity {
		reset = now.Add(time.Duration((b.capacity - b.tokens) / b.rate * float64(time.Second)))
	}
	return allowed, remaining, reset
}

func (b *bucket) lastSeen() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.seen
}

// Info describes the rate limit decision for one request. It feeds the
// X-RateLimit-* response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter settings, normally loaded from the environment.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter tracks a token bucket per client+endpoint+method key.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
	ticker  *time.Ticker
	done    chan struct{}
}

// NewLimiter creates a limiter and starts the idle-bucket sweeper when
// a cleanup interval is configured.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.ticker = time.NewTicker(config.CleanupInterval)
		l.done = make(chan struct{})
		go l.sweep()
	}

	return l
}

// Allow decides whether a request from clientID may hit the given endpoint.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	cfg := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if cfg == nil {
		cfg = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}

	// A zero limit marks the endpoint unlimited.
	if cfg.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + method + " " + endpoint
	allowed, remaining, reset := l.bucketFor(key, cfg).take()

	var retryAfter time.Duration
	if !allowed {
		retryAfter = max(time.Until(reset), 0)
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      cfg.Limit,
		Remaining:  remaining,
		ResetTime:  reset,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) bucketFor(key string, cfg *EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, exists := l.buckets[key]; exists {
		return b
	}

	capacity := cfg.Burst
	if capacity <= 0 {
		capacity = cfg.Limit
	}
	b := newBucket(capacity, float64(cfg.Limit)/cfg.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) sweep() {
	for {
		select {
		case <-l.ticker.C:
			l.dropStale()
		case <-l.done:
			return
		}
	}
}

// dropStale removes buckets idle longer than staleAfter so abandoned
// clients do not pin memory.
func (l *Limiter) dropStale() {
	cutoff := time.Now().Add(-staleAfter)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.lastSeen().Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop halts the sweeper goroutine.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.done != nil {
		close(l.done)
	}
}
