package config

import "fmt"

// AdminConfig is the configuration view of the terminal admin panel.
type AdminConfig struct {
	App       App
	Chatwoot  Service
	Evolution Service
	Cache     Cache
	Workers   Workers
}

// GatewayConfig is the configuration view of the HTTP gateway.
type GatewayConfig struct {
	App       App
	Chatwoot  Service
	Evolution Service
	Gateway   Gateway
	Cache     Cache
}

// GetAdminConfig builds and validates the admin panel configuration.
func GetAdminConfig() (*AdminConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg.Admin()
}

// GetGatewayConfig builds and validates the gateway configuration.
func GetGatewayConfig() (*GatewayConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg.GatewayView()
}

// Admin maps the fields used by the admin panel and validates them.
func (cfg *StructuredConfig) Admin() (*AdminConfig, error) {
	adminCfg := &AdminConfig{
		App:       cfg.App,
		Chatwoot:  cfg.Chatwoot,
		Evolution: cfg.Evolution,
		Cache:     cfg.Cache,
		Workers:   cfg.Workers,
	}
	return adminCfg, adminCfg.validate()
}

// GatewayView maps the fields used by the gateway and validates them.
func (cfg *StructuredConfig) GatewayView() (*GatewayConfig, error) {
	gatewayCfg := &GatewayConfig{
		App:       cfg.App,
		Chatwoot:  cfg.Chatwoot,
		Evolution: cfg.Evolution,
		Gateway:   cfg.Gateway,
		Cache:     cfg.Cache,
	}
	return gatewayCfg, gatewayCfg.validate()
}
