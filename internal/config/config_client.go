package config

import (
	"fmt"
	"time"
)

// Client defaults.
const (
	DefaultClientRequestTimeout = 10 * time.Second
	DefaultPBKDF2Iterations     = 100000
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL or host:port of the session HTTP API.
	HTTPAddress string `env:"HTTP_ADDRESS"`
	// GRPCAddress is the gRPC endpoint address used by the client.
	GRPCAddress string `env:"GRPC_ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientCrypto holds client-side key derivation settings.
type ClientCrypto struct {
	// PBKDF2Iterations is the iteration count used to derive AES keys.
	PBKDF2Iterations int `env:"PBKDF2_ITERATIONS"`
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the refresh job extends the session
	// TTL. Zero disables the job.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// ClientConfig is the top-level client configuration.
//
// Env prefix: CLIENT_ (e.g. CLIENT_ADAPTER_HTTP_ADDRESS,
// CLIENT_CRYPTO_PBKDF2_ITERATIONS). Redis settings reuse the server's
// STORAGE_REDIS_ names and are only consulted by direct connectivity probes.
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter `envPrefix:"CLIENT_ADAPTER_"`
	// Crypto contains key derivation settings.
	Crypto ClientCrypto `envPrefix:"CLIENT_CRYPTO_"`
	// Workers contains background job settings.
	Workers ClientWorkers `envPrefix:"CLIENT_WORKERS_"`
	// Redis is used by the direct cache probe.
	Redis Redis `envPrefix:"STORAGE_REDIS_"`
}

// GetClientConfig builds a client config from the environment. The result
// has defaults applied but is not validated: command-line overrides are
// expected to be applied by the caller before calling [ClientConfig.Validate].
func GetClientConfig() (*ClientConfig, error) {
	clientCfg := &ClientConfig{}
	if err := parseEnv(clientCfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	clientCfg.applyDefaults()
	return clientCfg, nil
}

// Validate reports whether the client config can be used to reach the
// session API.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}
	if cfg.Crypto.PBKDF2Iterations == 0 {
		cfg.Crypto.PBKDF2Iterations = DefaultPBKDF2Iterations
	}

	r := &cfg.Redis
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
}
