package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/museum-user-api/internal/logger"
)

// ServiceName is the name under which the API reports its health, next to
// the overall ("") status.
const ServiceName = "museum-user-api"

// Handler is the root gRPC transport handler.
//
// It serves the standard grpc.health.v1.Health service so orchestrators can
// check the API. A handler instance is created once at startup and shared by
// the gRPC server.
type Handler struct {
	// health keeps the per-service serving status.
	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose services start as NOT_SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing marks the API ready to take requests.
func (h *Handler) SetServing() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// SetNotServing marks the API as draining.
func (h *Handler) SetNotServing() {
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
	h.logger.Info().Str("status", status.String()).Msg("health status changed")
}
