// Package http implements the inbound HTTP gateway.
//
// It exposes the label, inbox and instance routes, forwards each call to the
// matching resource API and translates the error taxonomy into status codes.
// Caller token checks, request tracing, access logging and the CORS contract
// are handled in this package before requests reach the service layer.
package http
