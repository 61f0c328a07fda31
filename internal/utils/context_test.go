// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/museum-user-api/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestIdentityCtxKey(t *testing.T) {
	if IdentityCtxKey.String() != "identity" {
		t.Errorf("expected 'identity', got '%s'", IdentityCtxKey.String())
	}
}

func TestGetIdentityFromContext_Success(t *testing.T) {
	want := models.Identity{UserID: "u-1", UserName: "alice"}
	ctx := WithIdentity(context.Background(), want)

	got, ok := GetIdentityFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	got, ok := GetIdentityFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if got != (models.Identity{}) {
		t.Errorf("expected zero identity, got %+v", got)
	}
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "alice")

	_, ok := GetIdentityFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}
