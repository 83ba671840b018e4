package middlewares

import (
	"net/http"
	"time"

	"docplanner-gateway/internal/pkg/exceptions"
	"docplanner-gateway/internal/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit caps requests per client IP per second.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
