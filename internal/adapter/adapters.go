package adapter

import (
	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
)

// NewSessionAPIClient picks the transport from cfg: gRPC when a gRPC address
// is configured, HTTP otherwise.
func NewSessionAPIClient(cfg config.ClientAdapter, logger *logger.Logger) (SessionAPIClient, error) {
	if cfg.GRPCAddress != "" {
		logger.Debug().Str("address", cfg.GRPCAddress).Msg("using gRPC session API client")
		return NewGRPCSessionClient(cfg, logger)
	}

	logger.Debug().Str("address", cfg.HTTPAddress).Msg("using HTTP session API client")
	return NewHTTPSessionClient(cfg, logger)
}
