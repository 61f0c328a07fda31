package handler

import (
	"github.com/MKhiriev/museum-user-api/internal/config"
	"github.com/MKhiriev/museum-user-api/internal/handler/grpc"
	"github.com/MKhiriev/museum-user-api/internal/handler/http"
	"github.com/MKhiriev/museum-user-api/internal/logger"
	"github.com/MKhiriev/museum-user-api/internal/service"
)

// Handlers groups the transport handlers enabled by the server config.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds the HTTP handler when cfg.HTTPAddress is set and the
// gRPC health handler when cfg.GRPCAddress is set.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		if services == nil || services.AuthService == nil || services.CollectionService == nil {
			return nil, errNilServices
		}
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
