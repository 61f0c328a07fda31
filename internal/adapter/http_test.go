// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/museum-user-api/internal/config"
	"github.com/MKhiriev/museum-user-api/internal/logger"
	"github.com/MKhiriev/museum-user-api/models"
)

// newTestAdapter points an httpServerAdapter at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	creds := models.Credentials{UserName: "alice", Password: "secret", Password2: "secret"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/register", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var got models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, creds, got)

		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "User alice successfully registered"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	msg, err := a.Register(context.Background(), creds)

	require.NoError(t, err)
	assert.Equal(t, "User alice successfully registered", msg)
}

func TestRegister_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, models.MessageResponse{Message: "User Name already taken", Kind: "user_name_taken"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Credentials{UserName: "alice"})

	require.ErrorIs(t, err, ErrRejected)
	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "user_name_taken", rejection.Kind)
	assert.Equal(t, "User Name already taken", rejection.Message)
}

func TestRegister_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Credentials{UserName: "alice"})

	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Message: models.LoginResult{Status: "success", Token: "tok"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.Credentials{UserName: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, "tok", a.Token())
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Message: models.LoginResult{Status: "success"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{UserName: "alice"})

	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.Empty(t, a.Token())
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, models.MessageResponse{Message: "Incorrect password for user alice", Kind: "wrong_password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{UserName: "alice"})

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "wrong_password", rejection.Kind)
}

// ── Collections ─────────────────────────────────────────────────────────────

func TestCollections_RequestShape(t *testing.T) {
	tests := []struct {
		name       string
		call       func(a *httpServerAdapter) (models.Collection, error)
		wantMethod string
		wantPath   string
	}{
		{
			name: "get favourites",
			call: func(a *httpServerAdapter) (models.Collection, error) {
				return a.GetCollection(context.Background(), models.Favourites)
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/user/favourites",
		},
		{
			name: "add history",
			call: func(a *httpServerAdapter) (models.Collection, error) {
				return a.AddToCollection(context.Background(), models.History, "obj-1")
			},
			wantMethod: http.MethodPut,
			wantPath:   "/api/user/history/obj-1",
		},
		{
			name: "remove favourite",
			call: func(a *httpServerAdapter) (models.Collection, error) {
				return a.RemoveFromCollection(context.Background(), models.Favourites, "obj-1")
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/api/user/favourites/obj-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantMethod, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, "jwt tok", r.Header.Get("Authorization"))
				writeJSON(t, w, http.StatusOK, []string{"obj-0", "obj-1"})
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			a.SetToken("tok")

			items, err := tt.call(a)
			require.NoError(t, err)
			assert.Equal(t, models.Collection{"obj-0", "obj-1"}, items)
		})
	}
}

func TestGetCollection_EmptyIsNotNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []string{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	items, err := a.GetCollection(context.Background(), models.History)

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetCollection_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetCollection(context.Background(), models.Favourites)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRemoveFromCollection_ItemNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: "item obj-9 is not in favourites", Kind: "item_not_found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RemoveFromCollection(context.Background(), models.Favourites, "obj-9")

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "item_not_found", rejection.Kind)
	assert.Equal(t, "item obj-9 is not in favourites", rejection.Message)
}

func TestCollections_InvalidKind(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")

	_, err := a.GetCollection(context.Background(), models.CollectionKind("wishlist"))
	assert.ErrorIs(t, err, ErrInvalidKind)
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_UsesConfiguredToken(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "localhost:8080", Token: " tok "}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "tok", a.Token())
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://museum.example.com/", want: "https://museum.example.com"},
		{raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeRejection_PlainBody(t *testing.T) {
	err := decodeRejection([]byte("not json"))

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Empty(t, rejection.Kind)
	assert.Equal(t, "not json", rejection.Message)
}
