package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsFromEnvironment(t *testing.T) {
	t.Setenv("SLOT_SERVICE_API_BASE_URL", "https://draliatest.azurewebsites.net/api/availability/")
	t.Setenv(EnvUserCredentials, "testuser:testpassword, admin:a:b")

	internalConfig, driverConfig, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, ":8080", internalConfig.App.Port)
	assert.Equal(t, "DocPlanner", internalConfig.App.AuthRealm)
	assert.Equal(t, "forward", internalConfig.SlotServiceApi.AuthMode)
	assert.Equal(t, 30*time.Second, internalConfig.SlotServiceApi.Timeout())
	assert.Equal(t, []time.Duration{time.Second, 5 * time.Second, 10 * time.Second}, internalConfig.Resilience.RetryDelays())
	assert.Equal(t, 3, internalConfig.Resilience.BreakerFailureThreshold)
	assert.Equal(t, 30*time.Second, internalConfig.Resilience.BreakerCooldown())
	assert.Equal(t, []AppCredential{
		{Username: "testuser", Password: "testpassword"},
		{Username: "admin", Password: "a:b"},
	}, internalConfig.UserCredentials)
	assert.Equal(t, "info", driverConfig.Logger.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
app:
  port: ":9090"
slot_service_api:
  base_url: "http://localhost:5000/"
  auth_mode: static
  username: gateway
  password: secret
resilience:
  retry_delays_in_ms: [10, 20]
  breaker_failure_threshold: 5
user_credentials:
  - username: alice
    password: wonderland
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	v := NewViper()
	v.AddConfigPath(dir)

	internalConfig, _, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, ":9090", internalConfig.App.Port)
	assert.Equal(t, "static", internalConfig.SlotServiceApi.AuthMode)
	assert.Equal(t, "gateway", internalConfig.SlotServiceApi.Username)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, internalConfig.Resilience.RetryDelays())
	assert.Equal(t, 5, internalConfig.Resilience.BreakerFailureThreshold)
	assert.Equal(t, []AppCredential{{Username: "alice", Password: "wonderland"}}, internalConfig.UserCredentials)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		message string
	}{
		{
			name:    "Missing base url",
			env:     map[string]string{EnvUserCredentials: "u:p"},
			message: "BaseUrl",
		},
		{
			name: "No credentials",
			env: map[string]string{
				"SLOT_SERVICE_API_BASE_URL": "http://localhost:5000/",
			},
			message: "UserCredentials",
		},
		{
			name: "Static mode without username",
			env: map[string]string{
				"SLOT_SERVICE_API_BASE_URL":  "http://localhost:5000/",
				"SLOT_SERVICE_API_AUTH_MODE": "static",
				EnvUserCredentials:           "u:p",
			},
			message: "Username",
		},
		{
			name: "Unknown auth mode",
			env: map[string]string{
				"SLOT_SERVICE_API_BASE_URL":  "http://localhost:5000/",
				"SLOT_SERVICE_API_AUTH_MODE": "oauth",
				EnvUserCredentials:           "u:p",
			},
			message: "AuthMode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, _, err := Load(NewViper())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseCredentialList(t *testing.T) {
	credentials, err := ParseCredentialList("a:1,,b:2")
	require.NoError(t, err)
	assert.Len(t, credentials, 2)

	_, err = ParseCredentialList("missing-password")
	assert.Error(t, err)

	_, err = ParseCredentialList(":nouser")
	assert.Error(t, err)
}
