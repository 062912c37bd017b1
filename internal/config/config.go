package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends accepted by SCORELINE_STORE.
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Persistence
	Store      string // redis | sqlite | memory
	Namespace  string // key namespace shared by the favorites and user keys
	SQLitePath string // ex: "/data/scoreline.db"

	// Redis (only read when Store == "redis")
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDT             time.Duration // dial timeout
	RedisRT             time.Duration // read timeout
	RedisWT             time.Duration // write timeout
	RedisMaxWait        time.Duration // max wait between connect retries
	RedisPingTimeout    time.Duration
	RedisPoolSize       int
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries, doubles each attempt
	RedisWarnThreshold  int

	// Upstreams
	SportsDBBaseURL string
	SportsDBAPIKey  string
	NewsBaseURL     string
	NewsAPIKey      string // empty => news sections report unavailable
	NewsPageSize    int
	AccountsBaseURL string
	UpstreamTimeout time.Duration

	// Catalog
	CatalogFile    string        // optional YAML, built-in defaults when missing
	ReloadInterval time.Duration // catalog + sports list refresh
	AuditInterval  time.Duration // favorites count refresh

	// Access
	AllowedHosts   []string // optional, restrict admin endpoints to these Host headers
	AllowedCIDRS   []string // optional, restrict infra endpoints to these IPs/CIDRs
	TrustProxy     bool
	CORSOrigins    []string
	AuthRateBurst  int
	AuthRatePerMin int
}

func Load() *Config {
	cfg := &Config{
		ListenPort:      getenv("SCORELINE_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("SCORELINE_SHUTDOWN_TIMEOUT", 5*time.Second),

		LogLevel:  getenv("SCORELINE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("SCORELINE_PRETTY_LOG", false),

		Store:      strings.ToLower(getenv("SCORELINE_STORE", StoreSQLite)),
		Namespace:  getenv("SCORELINE_NAMESPACE", "default"),
		SQLitePath: getenv("SCORELINE_SQLITE_PATH", "scoreline.db"),

		SportsDBBaseURL: getenv("SCORELINE_SPORTSDB_BASE_URL", "https://www.thesportsdb.com/api/v1/json"),
		SportsDBAPIKey:  getenv("SCORELINE_SPORTSDB_API_KEY", "3"),
		NewsBaseURL:     getenv("SCORELINE_NEWS_BASE_URL", "https://newsapi.org/v2"),
		NewsAPIKey:      getenv("SCORELINE_NEWS_API_KEY", ""),
		NewsPageSize:    getenvInt("SCORELINE_NEWS_PAGE_SIZE", 20),
		AccountsBaseURL: getenv("SCORELINE_ACCOUNTS_BASE_URL", "https://dummyjson.com"),
		UpstreamTimeout: mustDuration("SCORELINE_UPSTREAM_TIMEOUT", 12*time.Second),

		CatalogFile:    getenv("SCORELINE_CATALOG_FILE", ""),
		ReloadInterval: mustDuration("SCORELINE_RELOAD_INTERVAL", 6*time.Hour),
		AuditInterval:  mustDuration("SCORELINE_AUDIT_INTERVAL", 5*time.Minute),

		AllowedHosts:   splitAndTrim(getenv("SCORELINE_ALLOWED_HOSTS", "")),
		AllowedCIDRS:   splitAndTrim(getenv("SCORELINE_ALLOWED_CIDRS", "")),
		TrustProxy:     mustBool("SCORELINE_TRUST_PROXY", false),
		CORSOrigins:    splitAndTrim(getenv("SCORELINE_CORS_ORIGINS", "*")),
		AuthRateBurst:  getenvInt("SCORELINE_AUTH_RATE_BURST", 5),
		AuthRatePerMin: getenvInt("SCORELINE_AUTH_RATE_PER_MIN", 10),
	}

	switch cfg.Store {
	case StoreRedis:
		cfg.loadRedis()
	case StoreSQLite, StoreMemory:
	default:
		panic(fmt.Sprintf("❌ FATAL: SCORELINE_STORE must be one of redis, sqlite, memory (got %q)", cfg.Store))
	}

	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = redact(cfg.RedisPassword)
		cfgCopy.NewsAPIKey = redact(cfg.NewsAPIKey)
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

func (c *Config) loadRedis() {
	c.RedisAddr = requireEnv("SCORELINE_REDIS_ADDR")
	c.RedisUser = getenv("SCORELINE_REDIS_USERNAME", "")
	c.RedisPassword = getenv("SCORELINE_REDIS_PASSWORD", "")
	c.RedisDB = getenvInt("SCORELINE_REDIS_DB", 0)
	c.RedisDT = mustDuration("SCORELINE_REDIS_DIAL_TIMEOUT", 5*time.Second)
	c.RedisRT = mustDuration("SCORELINE_REDIS_READ_TIMEOUT", 3*time.Second)
	c.RedisWT = mustDuration("SCORELINE_REDIS_WRITE_TIMEOUT", 3*time.Second)
	c.RedisMaxWait = mustDuration("SCORELINE_REDIS_MAX_WAIT", 10*time.Second)
	c.RedisPingTimeout = mustDuration("SCORELINE_REDIS_PING_TIMEOUT", 5*time.Second)
	c.RedisPoolSize = getenvInt("SCORELINE_REDIS_POOL_SIZE", 10)
	c.RedisConnectTimeout = mustDuration("SCORELINE_REDIS_CONNECT_TIMEOUT", 30*time.Second)
	c.RedisRetryInterval = mustDuration("SCORELINE_REDIS_RETRY_INTERVAL", 2*time.Second)
	c.RedisWarnThreshold = getenvInt("SCORELINE_REDIS_WARN_THRESHOLD", 3)
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "***REDACTED***"
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
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
		if b, err := strconv.ParseBool(v); err == nil {
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
		trimmed := strings.Trim(strings.TrimSpace(part), `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
