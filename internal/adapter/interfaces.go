// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the museum-user-api HTTP
// surface.
//
// [ServerAdapter] decouples callers from the REST protocol. Error values in
// errors.go are mapped from HTTP status codes by mapHTTPError so callers can
// use [errors.Is] ([ErrUnauthorized] for 401, [ErrRejected] for 422) and
// [errors.As] with [*RejectionError] to read the rejection kind.
package adapter

import (
	"context"

	"github.com/MKhiriev/museum-user-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the museum-user-api server.
type ServerAdapter interface {
	// SetToken stores the credential token attached to every gated request.
	SetToken(token string)

	// Token returns the stored credential token, or "" when none is set.
	Token() string

	// Register creates a user and returns the server's confirmation message.
	Register(ctx context.Context, creds models.Credentials) (string, error)

	// Login exchanges credentials for a token, stores it via SetToken and
	// returns it.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// GetCollection lists the item ids of one of the caller's collections.
	GetCollection(ctx context.Context, kind models.CollectionKind) (models.Collection, error)

	// AddToCollection adds itemID and returns the collection after the add.
	AddToCollection(ctx context.Context, kind models.CollectionKind, itemID string) (models.Collection, error)

	// RemoveFromCollection removes itemID and returns the collection after
	// the removal.
	RemoveFromCollection(ctx context.Context, kind models.CollectionKind, itemID string) (models.Collection, error)
}
