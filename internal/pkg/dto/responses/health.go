package responses

type HealthStatus struct {
	Status       string `json:"status"`
	BreakerState string `json:"breaker_state"`
}
