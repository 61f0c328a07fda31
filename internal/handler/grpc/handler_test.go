package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/museum-user-api/internal/logger"
)

func checkStatus(t *testing.T, h *Handler, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_StatusLifecycle(t *testing.T) {
	h := NewHandler(logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ServiceName))

	h.SetServing()
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, ServiceName))

	h.SetNotServing()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ServiceName))
}
