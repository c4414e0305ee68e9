package middlewares

import (
	"context"
	"net/http"
	"salonflow-service/internal/app/models"
	"salonflow-service/internal/pkg/constvars"
	"salonflow-service/internal/pkg/exceptions"
	"salonflow-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// APIKeyAuth grants superadmin access to back-office integrations holding the
// configured API key. Requests without the header fall through to JWT auth;
// only the bcrypt hash of the key is kept in config.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)

		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !utils.CheckAPIKeyHash(apiKey, m.InternalConfig.App.SuperadminAPIKeyHash) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		session := &models.Session{
			SessionID: "api-key",
			UserID:    "api-key-superadmin",
			Role:      constvars.RoleSuperadmin,
		}
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH_KEY, true)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)

		m.Log.Info("API key authentication successful",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
