package middlewares

import (
	"context"
	"net/http"
	"salonflow-service/internal/pkg/constvars"
	"salonflow-service/internal/pkg/exceptions"
	"salonflow-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer JWT to the Redis-backed session and puts
// it on the request context. A request already authenticated by API key
// passes through untouched.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if viaAPIKey, ok := r.Context().Value(constvars.CONTEXT_API_KEY_AUTH_KEY).(bool); ok && viaAPIKey {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionService.GetSessionData(r.Context(), sessionID)
		if err != nil {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			m.Log.Warn("Middlewares.Authenticate session lookup failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionNotFound(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
