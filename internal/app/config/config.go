package config

import (
	"errors"
	"fmt"
	"strings"

	"docplanner-gateway/internal/pkg/constvars"
	"docplanner-gateway/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvUserCredentials carries the inbound allow-list as "user:pass,user2:pass2".
// It is appended to any user_credentials entries from the config file.
const (
	EnvUserCredentials = "USER_CREDENTIALS"
	keyUserCredentials = "inbound.user_credentials_csv"
)

func init() {
	godotenv.Load()
}

// NewViper returns a viper instance reading config.yaml from the working
// directory or ./config, overridden by environment variables where the
// key "slot_service_api.base_url" maps to SLOT_SERVICE_API_BASE_URL.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv(keyUserCredentials, EnvUserCredentials)
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", ":8080")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("app.endpoint_prefix", "")
	v.SetDefault("app.auth_realm", "DocPlanner")
	v.SetDefault("app.max_requests", 100)
	v.SetDefault("app.shutdown_timeout_in_seconds", 10)

	v.SetDefault("slot_service_api.base_url", "")
	v.SetDefault("slot_service_api.auth_mode", constvars.UpstreamAuthModeForward)
	v.SetDefault("slot_service_api.username", "")
	v.SetDefault("slot_service_api.password", "")
	v.SetDefault("slot_service_api.timeout_in_seconds", 30)
	v.SetDefault("slot_service_api.max_requests_per_second", 0)

	v.SetDefault("resilience.retry_delays_in_ms", []int{1000, 5000, 10000})
	v.SetDefault("resilience.breaker_failure_threshold", 3)
	v.SetDefault("resilience.breaker_cooldown_in_seconds", 30)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_filename", "logger.log")
	v.SetDefault("logger.output_error_filename", "logger_error.log")
	v.SetDefault("logger.encoding", "")
}

// Load reads both configuration sections from v and validates them.
func Load(v *viper.Viper) (*InternalConfig, *DriverConfig, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("read config file: %w", err)
		}
	}

	internalConfig := &InternalConfig{}
	if err := v.Unmarshal(internalConfig); err != nil {
		return nil, nil, fmt.Errorf("decode internal config: %w", err)
	}

	if raw := v.GetString(keyUserCredentials); raw != "" {
		credentials, err := ParseCredentialList(raw)
		if err != nil {
			return nil, nil, err
		}
		internalConfig.UserCredentials = append(internalConfig.UserCredentials, credentials...)
	}

	driverConfig := &DriverConfig{}
	if err := v.Unmarshal(driverConfig); err != nil {
		return nil, nil, fmt.Errorf("decode driver config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(internalConfig); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %s", exceptions.FormatAllValidationErrors(err))
	}
	if err := validate.Struct(driverConfig); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %s", exceptions.FormatAllValidationErrors(err))
	}

	return internalConfig, driverConfig, nil
}

// ParseCredentialList splits "user:pass,user2:pass2". Only the first colon
// of each entry separates username from password.
func ParseCredentialList(raw string) ([]AppCredential, error) {
	var credentials []AppCredential
	for i, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		username, password, found := strings.Cut(entry, ":")
		if !found || username == "" || password == "" {
			return nil, fmt.Errorf("%s entry %d is not in user:password form", EnvUserCredentials, i+1)
		}
		credentials = append(credentials, AppCredential{Username: username, Password: password})
	}
	return credentials, nil
}
