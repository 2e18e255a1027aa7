// Package config handles configuration for the development fixture server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the fixture server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: access token lifetime.
//   - FixturesFile: optional YAML file with seed data replacing the compiled-in fixtures.
type Config struct {
	Addr                  string
	SecretKey             string
	TokenValidityDuration time.Duration
	FixturesFile          string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.FixturesFile = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
