package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Session scopes understood by the gate resolver.
const (
	SessionScopeApplication = "application"
	SessionScopeVisitor     = "visitor"
)

// Catalog sources.
const (
	CatalogSourceFixtures = "fixtures"
	CatalogSourcePostgres = "postgres"
)

type PostgresConfig struct {
	Host     string
	Port     string
	DB       string
	Username string
	Password string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RepositoriesConfig struct {
	Postgres PostgresConfig
}

type SessionConfig struct {
	Scope         string
	TTL           time.Duration
	VisitorSecret string
	SecureCookie  bool
}

type CatalogConfig struct {
	Source   string
	CacheTTL time.Duration
}

type ContactConfig struct {
	RateLimit  int
	RateWindow time.Duration
	StoreSize  int
}

type ObservabilityConfig struct {
	ServiceName  string
	MetricsAddr  string
	PprofAddr    string
	OTLPEndpoint string
}

type Config struct {
	Repositories  RepositoriesConfig
	Session       SessionConfig
	Catalog       CatalogConfig
	Contact       ContactConfig
	Observability ObservabilityConfig
	ServerPort    string
}

// UsesPostgres reports whether any component needs a database pool.
func (c *Config) UsesPostgres() bool {
	return c.Catalog.Source == CatalogSourcePostgres
}

func Load() (*Config, error) {
	cfg := &Config{
		Repositories: RepositoriesConfig{
			Postgres: PostgresConfig{
				Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
				DB:       getEnvOrDefault("POSTGRES_DB", "youcan"),
				Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
				Password: getEnvOrDefault("POSTGRES_PASSWORD", ""),
				SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
				MaxConns: 10,
				MinConns: 2,
			},
		},
		Session: SessionConfig{
			Scope:         getEnvOrDefault("SESSION_SCOPE", SessionScopeApplication),
			VisitorSecret: getEnvOrDefault("VISITOR_SECRET", ""),
			SecureCookie:  getEnvOrDefault("COOKIE_SECURE", "false") == "true",
		},
		Catalog: CatalogConfig{
			Source: getEnvOrDefault("CATALOG_SOURCE", CatalogSourceFixtures),
		},
		Observability: ObservabilityConfig{
			ServiceName:  getEnvOrDefault("OTEL_SERVICE_NAME", "youcan-website"),
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			PprofAddr:    getEnvOrDefault("PPROF_ADDR", ":6060"),
			OTLPEndpoint: getEnvOrDefault("OTEL_ENDPOINT", "otel-collector:4318"),
		},
		ServerPort: getEnvOrDefault("SERVER_PORT", "8091"),
	}

	var err error
	if cfg.Session.TTL, err = getDurationOrDefault("SESSION_TTL", 12*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Catalog.CacheTTL, err = getDurationOrDefault("CATALOG_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Contact.RateWindow, err = getDurationOrDefault("CONTACT_RATE_WINDOW", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Contact.RateLimit, err = getIntOrDefault("CONTACT_RATE_LIMIT", 3); err != nil {
		return nil, err
	}
	if cfg.Contact.StoreSize, err = getIntOrDefault("CONTACT_STORE_SIZE", 200); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.Session.TTL)
	}
	switch c.Session.Scope {
	case SessionScopeApplication:
	case SessionScopeVisitor:
		if len(c.Session.VisitorSecret) < 32 {
			return fmt.Errorf("VISITOR_SECRET must be at least 32 characters when SESSION_SCOPE=%s", SessionScopeVisitor)
		}
	default:
		return fmt.Errorf("unknown SESSION_SCOPE %q", c.Session.Scope)
	}

	switch c.Catalog.Source {
	case CatalogSourceFixtures:
	case CatalogSourcePostgres:
		if c.Repositories.Postgres.Password == "" {
			return fmt.Errorf("POSTGRES_PASSWORD environment variable is required when CATALOG_SOURCE=%s", CatalogSourcePostgres)
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.Catalog.Source)
	}

	if c.Contact.RateLimit < 1 {
		return fmt.Errorf("CONTACT_RATE_LIMIT must be positive")
	}
	if c.Contact.RateWindow <= 0 {
		return fmt.Errorf("CONTACT_RATE_WINDOW must be positive, got %s", c.Contact.RateWindow)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
