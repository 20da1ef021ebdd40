package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	BasePath    string // optional URL base prefix stripped by the breadcrumb resolver (ex: "/app")
	SiteSection string // fallback breadcrumb section (default "ITG")
	SiteTitle   string // fallback breadcrumb page (default "Docverse")

	SeedFile       string        // path to the content fixtures yaml
	ReloadInterval time.Duration // interval to reseed fixtures (default: 24h)
	GCInterval     time.Duration // interval to run garbage collection (default: 24h)
	GCThreshold    time.Duration // retention window for soft-deleted posts (default: 720h)

	DelayMin time.Duration // lower bound of the simulated gateway latency
	DelayMax time.Duration // upper bound of the simulated gateway latency

	// Redis (optional; empty addr disables the mirror)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	RateLimitBurst  int // token bucket size per client IP
	RateLimitPerMin int // refill rate per client IP per minute

	CORSAllowedOrigins []string // origins allowed by the CORS middleware ("*" when empty)
	AllowedHosts       []string // optional, restrict access to specific Host headers
	AllowedCIDRS       []string // optional, restrict admin endpoints to specific IPs/CIDRs
	TrustProxy         bool     // true => trust X-Forwarded-For headers
}

func Load() *Config {
	// Best effort: a missing .env simply means plain process env.
	_ = godotenv.Load()

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("DOCVERSE_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("DOCVERSE_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("DOCVERSE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("DOCVERSE_PRETTY_LOG", true),

		// Navigation
		BasePath:    getenv("DOCVERSE_BASE_PATH", ""),
		SiteSection: getenv("DOCVERSE_SITE_SECTION", "ITG"),
		SiteTitle:   getenv("DOCVERSE_SITE_TITLE", "Docverse"),

		// Content fixtures
		SeedFile:       getenv("DOCVERSE_SEED_FILE", "/app/fixtures.yaml"),
		ReloadInterval: mustDuration("DOCVERSE_RELOAD_INTERVAL", 24*time.Hour),
		GCInterval:     mustDuration("DOCVERSE_GC_INTERVAL", 24*time.Hour),
		GCThreshold:    mustDuration("DOCVERSE_GC_THRESHOLD", 30*24*time.Hour),

		// Gateway latency simulation
		DelayMin: mustDuration("DOCVERSE_DELAY_MIN", 300*time.Millisecond),
		DelayMax: mustDuration("DOCVERSE_DELAY_MAX", 800*time.Millisecond),

		// Redis settings
		RedisAddr:           getenv("DOCVERSE_REDIS_ADDR", ""),
		RedisUser:           getenv("DOCVERSE_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("DOCVERSE_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("DOCVERSE_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Rate limiting
		RateLimitBurst:  getenvInt("DOCVERSE_RATE_LIMIT_BURST", 30),
		RateLimitPerMin: getenvInt("DOCVERSE_RATE_LIMIT_PER_MIN", 60),

		// Access restrictions
		CORSAllowedOrigins: splitAndTrim(getenv("DOCVERSE_CORS_ORIGINS", "")),
		AllowedHosts:       splitAndTrim(getenv("DOCVERSE_ALLOWED_HOSTS", "")),
		AllowedCIDRS:       splitAndTrim(getenv("DOCVERSE_ALLOWED_CIDRS", "")),
		TrustProxy:         mustBool("DOCVERSE_TRUST_PROXY", false),
	}

	if cfg.DelayMax < cfg.DelayMin {
		cfg.DelayMax = cfg.DelayMin
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// RedisEnabled reports whether the Redis mirror is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
