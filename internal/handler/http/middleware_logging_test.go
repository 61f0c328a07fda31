package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/museum-user-api/internal/logger"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		status        int
		body          string
		wantInLogLine []string
	}{
		{
			name:          "successful collection read",
			method:        http.MethodGet,
			path:          "/api/user/favourites",
			status:        http.StatusOK,
			body:          `["1"]`,
			wantInLogLine: []string{`"method":"GET"`, `"uri":"/api/user/favourites"`, `"status":200`, `"size":5`, `"duration":`, `"route":"unmatched"`},
		},
		{
			name:          "rejection",
			method:        http.MethodPut,
			path:          "/api/user/history/7",
			status:        http.StatusUnprocessableEntity,
			body:          `{"error":"x"}`,
			wantInLogLine: []string{`"method":"PUT"`, `"status":422`},
		},
		{
			name:          "query string kept in uri",
			method:        http.MethodGet,
			path:          "/?q=1",
			status:        http.StatusOK,
			wantInLogLine: []string{`"uri":"/?q=1"`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := newTestHandler(t, nil, nil)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(zerolog.New(&logBuf).WithContext(req.Context()))
			rr := httptest.NewRecorder()

			h.withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			for _, want := range tt.wantInLogLine {
				assert.Contains(t, logBuf.String(), want)
			}
		})
	}
}

func TestWithLogging_RoutePatternThroughRouter(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler(t, nil, nil)
	h.logger = &logger.Logger{Logger: zerolog.New(&logBuf)}

	rr := serveRouter(h.Init(), http.MethodGet, "/")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"route":"/"`)
	assert.Contains(t, logBuf.String(), `"message":"request served"`)
}

func TestResponseWriter_StatusOrOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, w.statusOrOK())

	w.WriteHeader(http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, w.statusOrOK())
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, _ = w.Write([]byte("ok"))
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, w.size)
	assert.Equal(t, rr, w.Unwrap())
}
