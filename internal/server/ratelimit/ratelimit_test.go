package ratelimit

import (
	"testing"
	"time"
)

func TestTokenBucket_BurstThenDeny(t *testing.T) {
	// Slow refill so the burst dominates the test window.
	bucket := newTokenBucket(3, 0.001)

	for i := 0; i < 3; i++ {
		if !bucket.allow() {
			t.Fatalf("request %d should be allowed within burst", i+1)
		}
	}
	if bucket.allow() {
		t.Error("request beyond burst should be denied")
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := newTokenBucket(1, 1000.0)

	if !bucket.allow() {
		t.Fatal("first request should be allowed")
	}
	time.Sleep(5 * time.Millisecond)
	if !bucket.allow() {
		t.Error("bucket should have refilled")
	}
}

func TestTokenBucket_Status(t *testing.T) {
	bucket := newTokenBucket(5, 0.001)
	bucket.allow()
	bucket.allow()

	remaining, resetTime := bucket.status()
	if remaining != 3 {
		t.Errorf("remaining = %d, want 3", remaining)
	}
	if !resetTime.After(time.Now()) {
		t.Error("partially drained bucket should have a future reset time")
	}
}

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Endpoints: []Endpoint{
			{Path: "/match", Method: "POST", Limit: 30, Window: time.Minute, Burst: 2},
		},
	})
	defer limiter.Stop()

	for i := 0; i < 2; i++ {
		allowed, info := limiter.Allow("client-1", "/match", "POST")
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if info.Limit != 30 {
			t.Errorf("Limit = %d, want 30", info.Limit)
		}
	}

	allowed, info := limiter.Allow("client-1", "/match", "POST")
	if allowed {
		t.Error("third request should exceed the burst")
	}
	if info.RetryAfter <= 0 {
		t.Error("denied request should carry a retry-after hint")
	}
}

func TestLimiter_ClientsIsolated(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled: true,
		Endpoints: []Endpoint{
			{Path: "/match", Method: "POST", Limit: 30, Window: time.Minute, Burst: 1},
		},
	})
	defer limiter.Stop()

	limiter.Allow("client-1", "/match", "POST")
	if allowed, _ := limiter.Allow("client-1", "/match", "POST"); allowed {
		t.Error("client-1 should be exhausted")
	}
	if allowed, _ := limiter.Allow("client-2", "/match", "POST"); !allowed {
		t.Error("client-2 has its own bucket")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := limiter.Allow("client-1", "/match", "POST"); !allowed {
			t.Fatal("disabled limiter must allow everything")
		}
	}
}

func TestConfig_Match(t *testing.T) {
	cfg := defaultConfig()

	tests := []struct {
		name      string
		path      string
		method    string
		wantLimit int
	}{
		{"match endpoint", "/match", "POST", 30},
		{"recommend endpoint", "/recommend", "POST", 60},
		{"register endpoint", "/auth/register", "POST", 20},
		{"team complete via prefix", "/teams/team-1/complete", "POST", 100},
		{"health unlimited", "/health", "GET", 0},
		{"unlisted route gets default", "/projects", "GET", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cfg.match(tt.path, tt.method)
			if got.Limit != tt.wantLimit {
				t.Errorf("match(%q, %q).Limit = %d, want %d", tt.path, tt.method, got.Limit, tt.wantLimit)
			}
		})
	}
}

func TestConfig_MatchMethodMatters(t *testing.T) {
	cfg := defaultConfig()
	got := cfg.match("/match", "GET")
	if got.Limit != cfg.DefaultLimit {
		t.Errorf("GET /match should fall through to the default, got limit %d", got.Limit)
	}
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("RATE_LIMIT_ENABLED=false should disable the limiter")
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "250")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")

	cfg := LoadConfig()
	if cfg.DefaultLimit != 250 {
		t.Errorf("DefaultLimit = %d, want 250", cfg.DefaultLimit)
	}
	if cfg.DefaultWindow != 30*time.Second {
		t.Errorf("DefaultWindow = %v, want 30s", cfg.DefaultWindow)
	}
}
