package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonService struct {
	BaseURL          string   `json:"base_url"`
	AccountID        string   `json:"account_id"`
	TokenHeaderName  string   `json:"token_header"`
	TokenScheme      string   `json:"token_scheme"`
	APIKeyHeaderName string   `json:"api_key_header"`
	APIKey           string   `json:"api_key"`
	RequestTimeout   Duration `json:"request_timeout"`
}

func (s jsonService) toService() Service {
	return Service{
		BaseURL:          s.BaseURL,
		AccountID:        s.AccountID,
		TokenHeaderName:  s.TokenHeaderName,
		TokenScheme:      s.TokenScheme,
		APIKeyHeaderName: s.APIKeyHeaderName,
		APIKey:           s.APIKey,
		RequestTimeout:   time.Duration(s.RequestTimeout),
	}
}

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		AccessToken string `json:"access_token"`
		LogFile     string `json:"log_file"`
		Version     string `json:"version"`
	} `json:"app,omitempty"`

	Chatwoot  jsonService `json:"chatwoot,omitempty"`
	Evolution jsonService `json:"evolution,omitempty"`

	Gateway struct {
		Address           string   `json:"address"`
		CallerTokenHeader string   `json:"caller_token_header"`
		ShutdownTimeout   Duration `json:"shutdown_timeout"`
	} `json:"gateway,omitempty"`

	Cache struct {
		ListRetries    int      `json:"list_retries"`
		RetryBaseDelay Duration `json:"retry_base_delay"`
	} `json:"cache,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AccessToken: jsonCfg.App.AccessToken,
			LogFile:     jsonCfg.App.LogFile,
			Version:     jsonCfg.App.Version,
		},
		Chatwoot:  jsonCfg.Chatwoot.toService(),
		Evolution: jsonCfg.Evolution.toService(),
		Gateway: Gateway{
			Address:           jsonCfg.Gateway.Address,
			CallerTokenHeader: jsonCfg.Gateway.CallerTokenHeader,
			ShutdownTimeout:   time.Duration(jsonCfg.Gateway.ShutdownTimeout),
		},
		Cache: Cache{
			ListRetries:    jsonCfg.Cache.ListRetries,
			RetryBaseDelay: time.Duration(jsonCfg.Cache.RetryBaseDelay),
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
