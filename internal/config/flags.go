package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-c/-config json file path with configs
//	-key-mask-secret base64 key-masking secret
//	-key-namespace storage key namespace
//	-redis-host, -redis-port, -redis-tls, -redis-password session cache connection
//	-ttl session TTL in seconds
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level name
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("ephemeral-sessions", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var jsonConfigPath string
	var keyMaskSecret, keyNamespace, logLevel string
	var redisHost, redisPassword string
	var redisPort, ttlSeconds int
	var redisTLS bool
	var requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&keyMaskSecret, "key-mask-secret", "", "Base64-encoded 32-byte key mask secret")
	fs.StringVar(&keyNamespace, "key-namespace", "", "Storage key namespace")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&redisHost, "redis-host", "", "Session cache host")
	fs.IntVar(&redisPort, "redis-port", 0, "Session cache port")
	fs.BoolVar(&redisTLS, "redis-tls", false, "Use TLS for the session cache connection")
	fs.StringVar(&redisPassword, "redis-password", "", "Session cache password")
	fs.IntVar(&ttlSeconds, "ttl", 0, "Session TTL in seconds")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			KeyMaskSecret: keyMaskSecret,
			KeyNamespace:  keyNamespace,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			Redis: Redis{
				Host:     redisHost,
				Port:     redisPort,
				UseTLS:   redisTLS,
				Password: redisPassword,
			},
		},
		Session: Session{TTLSeconds: ttlSeconds},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, bracketing IPv6 hosts. An unset address is
// the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set implements flag.Value. The host must be empty, "localhost" or an IP
// literal; the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errBadNetAddress, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q is not in 1..65535", errBadNetAddress, portStr)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is neither localhost nor an IP", errBadNetAddress, host)
	}

	a.Host, a.Port = host, port
	return nil
}
