package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"docplanner-gateway/internal/app/contracts"
	"docplanner-gateway/internal/pkg/constvars"
	"docplanner-gateway/internal/pkg/utils"

	"go.uber.org/zap"
)

// BasicAuth rejects the request with a 401 challenge unless the
// Authorization header carries a configured credential pair. On success
// the verified identity is stored in the request context.
func (m *Middlewares) BasicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := m.AuthUsecase.AuthenticateBasic(r.Context(), r.Header.Get(constvars.HeaderAuthorization))
		if err != nil {
			utils.LogSecurityEvent(m.Log, "basic_auth_rejected", utils.GetRequestID(r.Context()), "medium",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
			w.Header().Set(constvars.HeaderWWWAuthenticate, fmt.Sprintf(`%s realm="%s", charset="UTF-8"`, constvars.AuthSchemeBasic, m.InternalConfig.App.AuthRealm))
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_IDENTITY_KEY, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IdentityFromContext(ctx context.Context) *contracts.Identity {
	identity, _ := ctx.Value(constvars.CONTEXT_IDENTITY_KEY).(*contracts.Identity)
	return identity
}
