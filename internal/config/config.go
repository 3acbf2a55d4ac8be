// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied by [StructuredConfig.applyDefaults] to fields left
// empty by every configuration source.
const (
	DefaultTokenIssuer     = "inkloth"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultResetTokenTTL   = 15 * time.Minute
	DefaultBcryptCost      = 10
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultConnectAttempts = 5
	DefaultMailDriver      = MailDriverSMTP
	DefaultSMTPPort        = 587
)

// Supported values of [Mail.Driver].
const (
	MailDriverSMTP = "smtp"
	MailDriverHTTP = "http"
)

// StructuredConfig is the top-level configuration container for the
// service. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file, and is treated as immutable
// once [GetStructuredConfig] returns.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token signing parameters,
	// password hashing cost and reset challenge lifetime.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the outbound collaborators (mail, object
	// storage).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of the CPU-bound hashing pool.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC key used to sign and verify session tokens.
	// Rotating it invalidates every outstanding token.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the validity window of a session token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// CookieExpire is the lifetime of the "token" cookie. Defaults to
	// TokenDuration.
	// Env: APP_COOKIE_EXPIRE
	CookieExpire time.Duration `env:"COOKIE_EXPIRE"`

	// BcryptCost is the work factor used when hashing new passwords.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// ResetTokenTTL is how long a password reset challenge stays valid.
	// Env: APP_RESET_TOKEN_TTL
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL"`

	// PublicBaseURL, when set, is used to build the reset link sent by
	// email (e.g. "https://inkloth.example"). Otherwise the link is derived
	// from the incoming request.
	// Env: APP_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// Version is exposed via the /api/v1/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// ConnectAttempts is how many times the startup ping is retried on a
	// retryable error.
	// Env: STORAGE_DB_CONNECT_ATTEMPTS
	ConnectAttempts int `env:"CONNECT_ATTEMPTS"`
}

// Adapter holds configuration for the outbound integrations.
type Adapter struct {
	Mail Mail `envPrefix:"MAIL_"`
	S3   S3   `envPrefix:"S3_"`

	// RequestTimeout bounds a single outbound call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Mail selects and configures the outbound email transport.
type Mail struct {
	// Driver is "smtp" (gomail) or "http" (JSON relay).
	// Env: ADAPTER_MAIL_DRIVER
	Driver string `env:"DRIVER"`

	// From is the sender address.
	// Env: ADAPTER_MAIL_FROM
	From string `env:"FROM"`

	// Env: ADAPTER_MAIL_SMTP_HOST, ADAPTER_MAIL_SMTP_PORT,
	// ADAPTER_MAIL_SMTP_USER, ADAPTER_MAIL_SMTP_PASSWORD
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	// RelayURL is the endpoint of the HTTP mail relay used by the "http"
	// driver; RelayToken is sent as a bearer token.
	// Env: ADAPTER_MAIL_RELAY_URL, ADAPTER_MAIL_RELAY_TOKEN
	RelayURL   string `env:"RELAY_URL"`
	RelayToken string `env:"RELAY_TOKEN"`
}

// S3 configures the S3-compatible object storage used for blog images.
type S3 struct {
	// Endpoint overrides the AWS endpoint (e.g. a MinIO URL).
	// Env: ADAPTER_S3_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Env: ADAPTER_S3_REGION
	Region string `env:"REGION"`

	// Env: ADAPTER_S3_BUCKET
	Bucket string `env:"BUCKET"`

	// Env: ADAPTER_S3_ACCESS_KEY, ADAPTER_S3_SECRET_KEY
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// PublicURL is the base under which uploaded objects are publicly
	// reachable. Defaults to "{Endpoint}/{Bucket}".
	// Env: ADAPTER_S3_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`
}

// Workers holds configuration for the CPU-bound hashing pool.
type Workers struct {
	// HashConcurrency is the maximum number of password hashes computed at
	// once. Defaults to runtime.NumCPU().
	// Env: WORKERS_HASH_CONCURRENCY
	HashConcurrency int `env:"HASH_CONCURRENCY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. For every field the first
// source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left empty by all sources receive their defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
