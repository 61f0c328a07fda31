// Package utils provides general-purpose helpers shared across the
// application: typed context keys, JSON response writing, the resty-based
// HTTP client, credential token signing and parsing, password hashing and
// id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/museum-user-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the auth middleware stores the
// verified [models.Identity].
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the verified identity from the context.
//
// ok is false when no identity is stored or the stored value has an
// unexpected type.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
