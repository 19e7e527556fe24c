// Package utils provides general-purpose helpers shared by the admin panel
// and the gateway: typed context keys, JSON response writing, HTTP client
// construction and identifier generation.
package utils

import (
	"context"
	"strings"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AccessTokenCtxKey is the key under which a per-request caller token is
// stored. The gateway puts the inbound caller token here so that a shared
// transport forwards it instead of its own token.
var AccessTokenCtxKey = contextKey("accessToken")

// WithAccessToken returns a copy of ctx carrying token (whitespace-trimmed).
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, AccessTokenCtxKey, strings.TrimSpace(token))
}

// AccessTokenFromContext returns the caller token stored in ctx.
//
// ok is false when no token is stored, the value has an unexpected type,
// or the stored token is empty.
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(AccessTokenCtxKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// RequestIDCtxKey is the key under which the inbound trace id is stored so
// that outbound calls made for the same request carry it upstream.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// RequestIDFromContext returns the request id stored in ctx.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
