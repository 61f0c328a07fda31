package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutes_UnmatchedAre404(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown"},
		{name: "path outside /api", method: http.MethodPost, path: "/user/register"},
		{name: "wrong method on register", method: http.MethodGet, path: "/api/user/register"},
		{name: "wrong method on index", method: http.MethodDelete, path: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(newTestHandler(t, nil, nil), tt.method, tt.path, "", nil)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestRoutes_CORS(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	t.Run("preflight from allowed origin", func(t *testing.T) {
		rr := serve(h, http.MethodOptions, "/api/user/favourites/1", "", map[string]string{
			"Origin":                         "https://museum.example",
			"Access-Control-Request-Method":  http.MethodPut,
			"Access-Control-Request-Headers": "Authorization, Content-Type",
		})

		assert.Equal(t, "https://museum.example", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
	})

	t.Run("origin outside the allow-list", func(t *testing.T) {
		rr := serve(h, http.MethodGet, "/", "", map[string]string{"Origin": "https://evil.example"})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRoutes_Metrics(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	serve(h, http.MethodGet, "/", "", nil)

	rr := serve(h, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "museum_user_api_http_requests_total"))
}

func TestRoutes_PanicIs500(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	router := h.Init()
	router.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rr := serveRouter(router, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
