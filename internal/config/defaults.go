package config

import "time"

const (
	defaultRequestTimeout    = 10 * time.Second
	defaultGatewayAddress    = "localhost:8080"
	defaultCallerTokenHeader = "X-Access-Token"
	defaultShutdownTimeout   = 5 * time.Second
	defaultListRetries       = 2
	defaultRetryBaseDelay    = 200 * time.Millisecond
)

// defaults returns the built-in configuration. Chatwoot expects the user
// token in api_access_token; the provisioning service only takes a static
// apikey header.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Chatwoot: Service{
			TokenHeaderName: "api_access_token",
			RequestTimeout:  defaultRequestTimeout,
		},
		Evolution: Service{
			APIKeyHeaderName: "apikey",
			RequestTimeout:   defaultRequestTimeout,
		},
		Gateway: Gateway{
			Address:           defaultGatewayAddress,
			CallerTokenHeader: defaultCallerTokenHeader,
			ShutdownTimeout:   defaultShutdownTimeout,
		},
		Cache: Cache{
			ListRetries:    defaultListRetries,
			RetryBaseDelay: defaultRetryBaseDelay,
		},
	}
}
