package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/museum-user-api/internal/utils"
)

// authScheme is the credential scheme expected in the "Authorization" header.
const authScheme = "jwt"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the identity it carries in the request context under
// [utils.IdentityCtxKey] before delegating to the next handler.
//
// Every rejection is answered with 401 {"error":"unauthorized"}; the next
// handler never runs.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeUnauthorized(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			writeUnauthorized(w, r, err)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeUnauthorized(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// getTokenFromAuthHeader extracts the token string from a raw
// "Authorization" HTTP header value of the form
//
//	Authorization: jwt eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
//
// The scheme is matched case-insensitively. It returns:
//   - [ErrInvalidAuthorizationHeader] if the scheme is missing or not "jwt".
//   - [ErrEmptyToken] if the scheme is present but the token is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, _ := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !strings.EqualFold(scheme, authScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
