// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/rs/zerolog"
)

// Defaults applied by [StructuredConfig.applyDefaults] to fields that no
// source has set.
const (
	DefaultKeyNamespace        = "snappymail"
	DefaultLogLevel            = "info"
	DefaultRedisHost           = "127.0.0.1"
	DefaultRedisPort           = 6379
	DefaultRedisDialTimeout    = 5 * time.Second
	DefaultRedisReadTimeout    = 3 * time.Second
	DefaultRedisWriteTimeout   = 3 * time.Second
	DefaultRedisPoolSize       = 10
	DefaultSessionTTLSeconds   = 14400
	DefaultRequestTimeout      = 10 * time.Second
	DefaultHealthCheckInterval = 30 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// ephemeral session service. It is populated by merging values from
// environment variables, command-line flags and an optional JSON file, and is
// treated as immutable once [GetStructuredConfig] returns.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the key-masking secret.
	App App `envPrefix:"APP_"`

	// Storage holds the connection settings of the session cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds the lifetime policy for stored session blobs.
	Session Session `envPrefix:"SESSION_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// KeyMaskSecret is the base64-encoded 32-byte secret used to mask
	// aliases into storage keys. Required: the service refuses to start
	// without it.
	// Env: APP_KEY_MASK_SECRET
	KeyMaskSecret string `env:"KEY_MASK_SECRET"`

	// KeyNamespace is the first segment of every storage key.
	// Env: APP_KEY_NAMESPACE
	KeyNamespace string `env:"KEY_NAMESPACE"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// Redis holds the session cache connection settings.
	Redis Redis `envPrefix:"REDIS_"`
}

// Redis holds connection settings for the networked TTL cache.
type Redis struct {
	// Env: STORAGE_REDIS_HOST
	Host string `env:"HOST"`

	// Env: STORAGE_REDIS_PORT
	Port int `env:"PORT"`

	// UseTLS enables TLS on the cache connection.
	// Env: STORAGE_REDIS_USE_TLS
	UseTLS bool `env:"USE_TLS"`

	// Password is sent with AUTH when non-empty.
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`

	// DialTimeout, ReadTimeout and WriteTimeout bound every network call
	// made against the cache.
	// Env: STORAGE_REDIS_DIAL_TIMEOUT, STORAGE_REDIS_READ_TIMEOUT,
	// STORAGE_REDIS_WRITE_TIMEOUT
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// PoolSize caps the number of connections shared by all handlers.
	// Env: STORAGE_REDIS_POOL_SIZE
	PoolSize int `env:"POOL_SIZE"`
}

// Session holds session lifetime settings.
type Session struct {
	// TTLSeconds is the lifetime applied on Create and Refresh.
	// Env: SESSION_TTL_SECONDS
	TTLSeconds int `env:"TTL_SECONDS"`
}

// TTL returns TTLSeconds as a duration.
func (s Session) TTL() time.Duration {
	return time.Duration(s.TTLSeconds) * time.Second
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC server ("host:port").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthCheckInterval is how often the store health worker pings the
	// cache.
	// Env: WORKERS_HEALTH_CHECK_INTERVAL
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.KeyNamespace == "" {
		cfg.App.KeyNamespace = DefaultKeyNamespace
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}

	r := &cfg.Storage.Redis
	if r.Host == "" {
		r.Host = DefaultRedisHost
	}
	if r.Port == 0 {
		r.Port = DefaultRedisPort
	}
	if r.DialTimeout == 0 {
		r.DialTimeout = DefaultRedisDialTimeout
	}
	if r.ReadTimeout == 0 {
		r.ReadTimeout = DefaultRedisReadTimeout
	}
	if r.WriteTimeout == 0 {
		r.WriteTimeout = DefaultRedisWriteTimeout
	}
	if r.PoolSize == 0 {
		r.PoolSize = DefaultRedisPoolSize
	}

	if cfg.Session.TTLSeconds == 0 {
		cfg.Session.TTLSeconds = DefaultSessionTTLSeconds
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.HealthCheckInterval == 0 {
		cfg.Workers.HealthCheckInterval = DefaultHealthCheckInterval
	}
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler]. Secrets are
// reported only as set/unset so the config can be logged at startup.
func (cfg *StructuredConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("key_mask_secret_set", cfg.App.KeyMaskSecret != "").
		Str("key_namespace", cfg.App.KeyNamespace).
		Str("version", cfg.App.Version).
		Str("log_level", cfg.App.LogLevel).
		Str("redis_host", cfg.Storage.Redis.Host).
		Int("redis_port", cfg.Storage.Redis.Port).
		Bool("redis_use_tls", cfg.Storage.Redis.UseTLS).
		Bool("redis_password_set", cfg.Storage.Redis.Password != "").
		Int("redis_db", cfg.Storage.Redis.DB).
		Int("ttl_seconds", cfg.Session.TTLSeconds).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Dur("health_check_interval", cfg.Workers.HealthCheckInterval)
}
