package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllSections(t *testing.T) {
	path := writeTempFile(t, `{
		"app": {"access_token": "tok", "version": "2.0.0"},
		"chatwoot": {"base_url": "https://chat.example.com", "account_id": "1", "request_timeout": "4s"},
		"evolution": {"base_url": "https://evo.example.com", "api_key": "k", "api_key_header": "apikey"},
		"gateway": {"address": ":9999", "caller_token_header": "X-Caller"},
		"cache": {"list_retries": 5, "retry_base_delay": "10ms"},
		"workers": {"refresh_interval": "15s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "tok", cfg.App.AccessToken)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "https://chat.example.com", cfg.Chatwoot.BaseURL)
	assert.Equal(t, "1", cfg.Chatwoot.AccountID)
	assert.Equal(t, 4*time.Second, cfg.Chatwoot.RequestTimeout)
	assert.Equal(t, "k", cfg.Evolution.APIKey)
	assert.Equal(t, "apikey", cfg.Evolution.APIKeyHeaderName)
	assert.Equal(t, ":9999", cfg.Gateway.Address)
	assert.Equal(t, "X-Caller", cfg.Gateway.CallerTokenHeader)
	assert.Equal(t, 5, cfg.Cache.ListRetries)
	assert.Equal(t, 10*time.Millisecond, cfg.Cache.RetryBaseDelay)
	assert.Equal(t, 15*time.Second, cfg.Workers.RefreshInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := parseJSON(writeTempFile(t, `{"app": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "number", input: `1000000`, want: time.Millisecond},
		{name: "null", input: `null`, want: 0},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(data))
}
