package config

import "time"

type InternalConfig struct {
	App             App               `mapstructure:"app"`
	SlotServiceApi  AppSlotServiceApi `mapstructure:"slot_service_api"`
	Resilience      AppResilience     `mapstructure:"resilience"`
	UserCredentials []AppCredential   `mapstructure:"user_credentials" validate:"min=1,dive"`
}

type App struct {
	Env                      string `mapstructure:"env"`
	Port                     string `mapstructure:"port" validate:"required"`
	Timezone                 string `mapstructure:"timezone" validate:"required"`
	EndpointPrefix           string `mapstructure:"endpoint_prefix"`
	AuthRealm                string `mapstructure:"auth_realm" validate:"required"`
	MaxRequests              int    `mapstructure:"max_requests" validate:"gt=0"`
	ShutdownTimeoutInSeconds int    `mapstructure:"shutdown_timeout_in_seconds" validate:"gt=0"`
}

// AppSlotServiceApi describes the upstream scheduling service. Username
// and Password are only used when AuthMode is "static".
type AppSlotServiceApi struct {
	BaseUrl              string `mapstructure:"base_url" validate:"required,url"`
	AuthMode             string `mapstructure:"auth_mode" validate:"required,oneof=forward static"`
	Username             string `mapstructure:"username" validate:"required_if=AuthMode static"`
	Password             string `mapstructure:"password" validate:"required_if=AuthMode static"`
	TimeoutInSeconds     int    `mapstructure:"timeout_in_seconds" validate:"gt=0"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second" validate:"gte=0"`
}

type AppResilience struct {
	RetryDelaysInMs          []int `mapstructure:"retry_delays_in_ms" validate:"dive,gte=0"`
	BreakerFailureThreshold  int   `mapstructure:"breaker_failure_threshold" validate:"gt=0"`
	BreakerCooldownInSeconds int   `mapstructure:"breaker_cooldown_in_seconds" validate:"gt=0"`
}

// AppCredential is one entry of the inbound allow-list. Password may be
// a bcrypt hash.
type AppCredential struct {
	Username string `mapstructure:"username" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
}

func (r AppResilience) RetryDelays() []time.Duration {
	delays := make([]time.Duration, 0, len(r.RetryDelaysInMs))
	for _, ms := range r.RetryDelaysInMs {
		delays = append(delays, time.Duration(ms)*time.Millisecond)
	}
	return delays
}

func (r AppResilience) BreakerCooldown() time.Duration {
	return time.Duration(r.BreakerCooldownInSeconds) * time.Second
}

func (s AppSlotServiceApi) Timeout() time.Duration {
	return time.Duration(s.TimeoutInSeconds) * time.Second
}
