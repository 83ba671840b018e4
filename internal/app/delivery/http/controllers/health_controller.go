package controllers

import (
	"net/http"

	"docplanner-gateway/internal/app/contracts"
	"docplanner-gateway/internal/pkg/constvars"
	"docplanner-gateway/internal/pkg/dto/responses"
	"docplanner-gateway/internal/pkg/utils"
)

type HealthController struct {
	Policy contracts.ResiliencePolicy
}

func NewHealthController(policy contracts.ResiliencePolicy) *HealthController {
	return &HealthController{Policy: policy}
}

// Health always answers 200; status turns "degraded" while the upstream
// breaker is not closed.
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	state := c.Policy.BreakerState()
	status := constvars.HealthStatusOK
	if state != constvars.BreakerStateClosed {
		status = constvars.HealthStatusDegraded
	}

	utils.BuildDataResponse(w, constvars.StatusOK, responses.HealthStatus{
		Status:       status,
		BreakerState: state,
	})
}
