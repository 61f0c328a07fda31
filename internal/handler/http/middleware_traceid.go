package http

import (
	"net/http"

	"github.com/google/uuid"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength bounds trace ids accepted from clients.
	maxTraceIDLength = 64
)

// withTraceID tags the request logger and the response with a trace id. A
// client-supplied X-Trace-ID is reused when it is a plausible id, otherwise a
// fresh UUID is issued so arbitrary header text never reaches the logs.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = uuid.NewString()
		}

		r = r.WithContext(h.logger.WithTraceID(traceID).WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
