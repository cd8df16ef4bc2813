// Package config handles runtime configuration for the server: defaults,
// environment overlay, and command-line flags, applied in that order.
package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// Config holds runtime settings for the Budgetwise server.
type Config struct {
	// Addr is the bind address for the HTTP endpoint.
	Addr string
	// DatabasePath is the SQLite database file path.
	DatabasePath string
	// SecretKey is the HMAC secret for signing JWTs (HS256).
	// Do not use the default in production.
	SecretKey string
	// TokenDuration is how long issued session tokens remain valid.
	TokenDuration time.Duration
	// DemoUsers is the size of the seeded demo user population.
	DemoUsers int
	// SeedOnStart controls whether the seeding pipeline runs before the
	// server accepts traffic.
	SeedOnStart bool
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabasePath = "./data/budgetwise.db"
	c.SecretKey = "dev-secret-key"
	c.TokenDuration = 24 * time.Hour
	c.DemoUsers = 10
	c.SeedOnStart = true
}

// ApplyEnv overlays values from environment variables onto c.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		c.SecretKey = v
	}
	if v := os.Getenv("TOKEN_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.TokenDuration = d
		}
	}
	if v := os.Getenv("DEMO_USERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.DemoUsers = n
		}
	}
	if v := os.Getenv("SEED_ON_START"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.SeedOnStart = b
		}
	}
}

// Load builds a Config by applying defaults, then environment variables,
// then command-line flags.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.ApplyEnv()

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "bind address for the HTTP endpoint")
	flag.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "SQLite database file path")
	flag.StringVar(&cfg.SecretKey, "secret", cfg.SecretKey, "JWT signing secret")
	flag.DurationVar(&cfg.TokenDuration, "token-duration", cfg.TokenDuration, "session token validity")
	flag.IntVar(&cfg.DemoUsers, "demo-users", cfg.DemoUsers, "number of demo users to seed")
	flag.BoolVar(&cfg.SeedOnStart, "seed", cfg.SeedOnStart, "seed demo data before serving")
	flag.Parse()

	return cfg
}
