// Package config handles runtime configuration for the blog server,
// applying defaults first and environment variables on top.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultSecretKey is the insecure development fallback used when
// SECRET_KEY is not set. Callers should warn when they see it in use.
const DefaultSecretKey = "dev-secret-key"

// Config holds runtime settings for the blog server.
//
// Fields:
//   - Addr: bind address for the HTTP server.
//   - DatabasePath: sqlite database path (DATABASE_URL).
//   - SessionDir: directory for the badger session store (SESSION_DIR).
//   - SecretKey: HMAC secret for signing session cookies (SECRET_KEY).
//   - SecureCookies: set the Secure flag on cookies (SECURE_COOKIES=true).
type Config struct {
	Addr          string
	DatabasePath  string
	SessionDir    string
	SecretKey     string
	SecureCookies bool
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabasePath = "blog.db"
	c.SessionDir = filepath.Join("data", "sessions")
	c.SecretKey = DefaultSecretKey
	c.SecureCookies = false
}

func (c *Config) loadEnv() {
	if v := os.Getenv("ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("SESSION_DIR"); v != "" {
		c.SessionDir = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		c.SecretKey = v
	}
	c.SecureCookies = os.Getenv("SECURE_COOKIES") == "true"
}

// Load builds a Config by applying defaults and then overlaying values from
// the environment. A .env file in the working directory is read first if
// present.
func Load() *Config {
	godotenv.Load()
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.loadEnv()
	return cfg
}
