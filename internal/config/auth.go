package config

import (
	"fmt"
	"os"
	"time"
)

const (
	EnvAuthIssuer      = "GIUSTIZIA_AUTH_ISSUER"
	EnvAuthAudience    = "GIUSTIZIA_AUTH_AUDIENCE"
	EnvAuthEmailDomain = "GIUSTIZIA_AUTH_EMAIL_DOMAIN"
	EnvAuthCacheTTL    = "GIUSTIZIA_AUTH_CACHE_TTL"
)

// AuthConfig holds identity provider verification parameters and
// session cache settings.
type AuthConfig struct {
	Issuer      string `toml:"issuer"`
	Audience    string `toml:"audience"`
	EmailDomain string `toml:"email_domain"`
	CacheTTL    string `toml:"cache_ttl"`
}

// CacheTTLDuration returns CacheTTL as a time.Duration.
func (c *AuthConfig) CacheTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.CacheTTL)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AuthConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.Issuer != "" {
		c.Issuer = overlay.Issuer
	}
	if overlay.Audience != "" {
		c.Audience = overlay.Audience
	}
	if overlay.EmailDomain != "" {
		c.EmailDomain = overlay.EmailDomain
	}
	if overlay.CacheTTL != "" {
		c.CacheTTL = overlay.CacheTTL
	}
}

func (c *AuthConfig) loadDefaults() {
	if c.EmailDomain == "" {
		c.EmailDomain = "lasville.it"
	}
	if c.CacheTTL == "" {
		c.CacheTTL = "5m"
	}
}

func (c *AuthConfig) loadEnv() {
	if v := os.Getenv(EnvAuthIssuer); v != "" {
		c.Issuer = v
	}
	if v := os.Getenv(EnvAuthAudience); v != "" {
		c.Audience = v
	}
	if v := os.Getenv(EnvAuthEmailDomain); v != "" {
		c.EmailDomain = v
	}
	if v := os.Getenv(EnvAuthCacheTTL); v != "" {
		c.CacheTTL = v
	}
}

func (c *AuthConfig) validate() error {
	if c.Issuer == "" {
		return fmt.Errorf("issuer required")
	}
	if c.Audience == "" {
		return fmt.Errorf("audience required")
	}
	if _, err := time.ParseDuration(c.CacheTTL); err != nil {
		return fmt.Errorf("invalid cache_ttl: %w", err)
	}
	return nil
}
