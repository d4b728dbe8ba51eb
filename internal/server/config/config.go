// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the TalentConnect server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory stores.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration / RefreshTokenValidityDuration: token lifetimes.
//   - CodeTTL: how long an issued verification code stays valid.
//   - RedisAddr: Redis address for the verification code store. Empty selects
//     the in-memory store.
//   - AmqpURL: RabbitMQ URL for the event publisher. Empty selects the noop
//     publisher.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Region / S3BaseEndpoint: object storage settings.
//   - PublicBaseURL: base URL under which uploaded objects are reachable.
type Config struct {
	EndpointAddr                 string
	DatabaseDSN                  string
	SecretKey                    string
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
	CodeTTL                      time.Duration
	RedisAddr                    string
	AmqpURL                      string
	S3RootUser                   string
	S3RootPassword               string
	S3Region                     string
	S3BaseEndpoint               string
	PublicBaseURL                string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.RefreshTokenValidityDuration = 720 * time.Hour
	c.CodeTTL = 10 * time.Minute
	c.RedisAddr = ""
	c.AmqpURL = ""
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.PublicBaseURL = "http://127.0.0.1:9000"
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
