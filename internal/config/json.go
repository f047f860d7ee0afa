package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		KeyMaskSecret string `json:"key_mask_secret"`
		KeyNamespace  string `json:"key_namespace"`
		Version       string `json:"version"`
		LogLevel      string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		Redis struct {
			Host         string   `json:"host"`
			Port         int      `json:"port"`
			UseTLS       bool     `json:"use_tls"`
			Password     string   `json:"password"`
			DB           int      `json:"db"`
			DialTimeout  Duration `json:"dial_timeout"`
			ReadTimeout  Duration `json:"read_timeout"`
			WriteTimeout Duration `json:"write_timeout"`
			PoolSize     int      `json:"pool_size"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Session struct {
		TTLSeconds int `json:"ttl_seconds"`
	} `json:"session,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		HealthCheckInterval Duration `json:"health_check_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	redis := jsonCfg.Storage.Redis
	cfg := &StructuredConfig{
		App: App{
			KeyMaskSecret: jsonCfg.App.KeyMaskSecret,
			KeyNamespace:  jsonCfg.App.KeyNamespace,
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			Redis: Redis{
				Host:         redis.Host,
				Port:         redis.Port,
				UseTLS:       redis.UseTLS,
				Password:     redis.Password,
				DB:           redis.DB,
				DialTimeout:  time.Duration(redis.DialTimeout),
				ReadTimeout:  time.Duration(redis.ReadTimeout),
				WriteTimeout: time.Duration(redis.WriteTimeout),
				PoolSize:     redis.PoolSize,
			},
		},
		Session: Session{
			TTLSeconds: jsonCfg.Session.TTLSeconds,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			HealthCheckInterval: time.Duration(jsonCfg.Workers.HealthCheckInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
