package http

import (
	"net/http"

	"github.com/MKhiriev/museum-user-api/internal/logger"
	"github.com/MKhiriev/museum-user-api/internal/metrics"
	"github.com/MKhiriev/museum-user-api/internal/service"
	"github.com/MKhiriev/museum-user-api/internal/utils"
	"github.com/MKhiriev/museum-user-api/models"
)

// rejectionStatus is the status of every collaborator rejection. Clients
// tell rejections apart by their kind, not by the status code.
const rejectionStatus = http.StatusUnprocessableEntity

const unauthorizedMessage = "unauthorized"

// writeMessageRejection answers register and login failures with
// {"message": ..., "kind": ...}.
func writeMessageRejection(w http.ResponseWriter, r *http.Request, operation string, err error) {
	rejection := reject(r, operation, err)
	utils.WriteJSON(w, models.MessageResponse{Message: rejection.Message, Kind: string(rejection.Kind)}, rejectionStatus)
}

// writeErrorRejection answers collection failures with
// {"error": ..., "kind": ...}.
func writeErrorRejection(w http.ResponseWriter, r *http.Request, operation string, err error) {
	rejection := reject(r, operation, err)
	utils.WriteJSON(w, models.ErrorResponse{Error: rejection.Message, Kind: string(rejection.Kind)}, rejectionStatus)
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Warn().Err(err).Msg("request rejected by auth gate")
	metrics.RecordAuthFailure()
	utils.WriteJSON(w, models.ErrorResponse{Error: unauthorizedMessage}, http.StatusUnauthorized)
}

func reject(r *http.Request, operation string, err error) *service.Error {
	rejection := service.AsError(err)

	event := logger.FromRequest(r).Warn()
	if rejection.Kind == service.KindInternal {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("operation", operation).Str("kind", string(rejection.Kind)).Msg("operation rejected")

	metrics.RecordRejection(operation, string(rejection.Kind))
	return rejection
}
