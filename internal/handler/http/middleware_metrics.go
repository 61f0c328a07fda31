package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/museum-user-api/internal/metrics"
)

const unmatchedRoute = "unmatched"

// withMetrics records request count and duration labelled by the matched
// route pattern, so ids in the path do not explode label cardinality.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		metrics.RecordRequest(r.Method, routePattern(r), strconv.Itoa(mw.statusOrOK()), time.Since(start).Seconds())
	})
}
