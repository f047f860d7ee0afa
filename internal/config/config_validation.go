// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/keymask"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. A missing or
// malformed key mask secret fails closed.
func (cfg *StructuredConfig) validate() error {
	if _, err := keymask.New(cfg.App.KeyMaskSecret, cfg.App.KeyNamespace); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Session.TTLSeconds <= 0 {
		return ErrInvalidSessionConfigs
	}

	if err := cfg.Storage.Redis.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (r Redis) validate() error {
	if strings.TrimSpace(r.Host) == "" || r.Port < 1 || r.Port > 65535 {
		return ErrInvalidStorageConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" && cfg.Adapter.GRPCAddress == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Crypto.PBKDF2Iterations <= 0 {
		return ErrInvalidCryptoConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
