package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/museum-user-api/internal/config"
	"github.com/MKhiriev/museum-user-api/internal/logger"
	"github.com/MKhiriev/museum-user-api/internal/utils"
	"github.com/MKhiriev/museum-user-api/models"
)

const (
	registerPath   = "/api/user/register"
	loginPath      = "/api/user/login"
	collectionPath = "/api/user/{kind}"
	itemPath       = "/api/user/{kind}/{id}"

	authScheme = "jwt"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. The base URL is taken from cfg.HTTPAddress; a missing
// scheme defaults to http. cfg.Token, when set, is used for gated requests
// until the next Login.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	adapter := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	adapter.SetToken(cfg.Token)

	return adapter, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs creds to /api/user/register and returns the message of the
// response body.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) (string, error) {
	var result models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&result).
		Post(registerPath)
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().Str("user_name", creds.UserName).Msg("user registered")
	return result.Message, nil
}

// Login POSTs creds to /api/user/login and stores the issued token.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&result).
		Post(loginPath)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := strings.TrimSpace(result.Message.Token)
	if token == "" {
		return "", ErrEmptyToken
	}

	h.SetToken(token)
	return token, nil
}

func (h *httpServerAdapter) GetCollection(ctx context.Context, kind models.CollectionKind) (models.Collection, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	return h.doCollection(h.authedRequest(ctx).
		SetPathParam("kind", kind.String()), resty.MethodGet, collectionPath)
}

func (h *httpServerAdapter) AddToCollection(ctx context.Context, kind models.CollectionKind, itemID string) (models.Collection, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	return h.doCollection(h.authedRequest(ctx).
		SetPathParams(map[string]string{"kind": kind.String(), "id": itemID}), resty.MethodPut, itemPath)
}

func (h *httpServerAdapter) RemoveFromCollection(ctx context.Context, kind models.CollectionKind, itemID string) (models.Collection, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	return h.doCollection(h.authedRequest(ctx).
		SetPathParams(map[string]string{"kind": kind.String(), "id": itemID}), resty.MethodDelete, itemPath)
}

func (h *httpServerAdapter) doCollection(req *resty.Request, method, path string) (models.Collection, error) {
	var items models.Collection

	resp, err := req.SetResult(&items).Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if items == nil {
		items = models.Collection{}
	}
	return items, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", authScheme+" "+token)
	}
	return req
}
