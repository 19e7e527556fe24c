// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestAccessTokenFromContext_Success(t *testing.T) {
	ctx := WithAccessToken(context.Background(), "  secret  ")

	token, ok := AccessTokenFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if token != "secret" {
		t.Errorf("expected 'secret', got '%s'", token)
	}
}

func TestAccessTokenFromContext_Missing(t *testing.T) {
	_, ok := AccessTokenFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestAccessTokenFromContext_Empty(t *testing.T) {
	ctx := WithAccessToken(context.Background(), "   ")

	if _, ok := AccessTokenFromContext(ctx); ok {
		t.Error("expected ok=false for blank token")
	}
}

func TestAccessTokenFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AccessTokenCtxKey, 42)

	if _, ok := AccessTokenFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestRequestIDFromContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "trace-1")

	id, ok := RequestIDFromContext(ctx)
	if !ok || id != "trace-1" {
		t.Errorf("expected trace-1, got %q (ok=%v)", id, ok)
	}

	if _, ok = RequestIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}
