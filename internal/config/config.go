package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Session backends understood by SESSION_BACKEND.
const (
	SessionBackendFile   = "file"
	SessionBackendRedis  = "redis"
	SessionBackendMemory = "memory"
)

type Config struct {
	APIBaseURL       string `env:"API_BASE_URL" envDefault:"http://localhost:5000/api"`
	ShortLinkBaseURL string `env:"SHORT_LINK_BASE_URL" envDefault:"http://localhost:5000/s"` // Prefix for QR codes of short links
	URLPageSize      int    `env:"URL_PAGE_SIZE" envDefault:"10"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogEncoding      string `env:"LOG_ENCODING" envDefault:"console"`

	Session   SessionConfig   `envPrefix:"SESSION_"`
	DevServer DevServerConfig `envPrefix:"DEV_"`
}

// SessionConfig selects where the operator's credential is kept between runs
type SessionConfig struct {
	Backend  string `env:"BACKEND" envDefault:"file"`
	FilePath string `env:"FILE"` // Defaults to <user config dir>/portfolio-admin/session.json
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisKey string `env:"REDIS_KEY" envDefault:"portfolio-admin:session"`
}

// DevServerConfig configures the in-memory development backend
type DevServerConfig struct {
	Addr           string  `env:"ADDR" envDefault:":5000"`
	PublicURL      string  `env:"PUBLIC_URL" envDefault:"http://localhost:5000"` // Used to build image and short link URLs
	JWTSecret      string  `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	JWTTTLHours    int     `env:"JWT_TTL_HOURS" envDefault:"24"`
	AdminEmail     string  `env:"ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword  string  `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"10"` // 0 disables rate limiting
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
	LegacyURLList  bool    `env:"LEGACY_URL_LIST"` // Answer GET /url with a bare array
}

// JWTTTL returns the token lifetime as a duration
func (c DevServerConfig) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	// A missing .env file is the normal case outside development
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return finalize(cfg)
}

// LoadFromMap parses configuration from the given variables only
func LoadFromMap(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return finalize(cfg)
}

func finalize(cfg *Config) (*Config, error) {
	base, err := url.Parse(cfg.APIBaseURL)
	if err != nil || !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("invalid API_BASE_URL %q", cfg.APIBaseURL)
	}
	cfg.APIBaseURL = strings.TrimSuffix(cfg.APIBaseURL, "/")
	cfg.ShortLinkBaseURL = strings.TrimSuffix(cfg.ShortLinkBaseURL, "/")
	cfg.DevServer.PublicURL = strings.TrimSuffix(cfg.DevServer.PublicURL, "/")

	if cfg.URLPageSize < 1 {
		cfg.URLPageSize = 10
	}

	switch cfg.Session.Backend {
	case SessionBackendFile, SessionBackendRedis, SessionBackendMemory:
	default:
		return nil, fmt.Errorf("unknown SESSION_BACKEND %q", cfg.Session.Backend)
	}

	if cfg.Session.FilePath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = os.TempDir()
		}
		cfg.Session.FilePath = filepath.Join(dir, "portfolio-admin", "session.json")
	}

	return cfg, nil
}
