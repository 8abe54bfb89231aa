package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/exceptions"
	"ayuraksha-service/internal/pkg/utils"
)

// SessionRequired resolves the auth_token cookie (or bearer header) into an
// application session and rejects the request when neither yields one.
func (m *Middlewares) SessionRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieToken := extractSessionToken(r)
		if cookieToken == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(fmt.Errorf("no session cookie or bearer token")))
			return
		}

		session, err := m.SessionService.Resolve(r.Context(), cookieToken)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionOptional attaches the session when one resolves and lets the
// request through either way.
func (m *Middlewares) SessionOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieToken := extractSessionToken(r)
		if cookieToken != "" {
			if session, err := m.SessionService.Resolve(r.Context(), cookieToken); err == nil {
				ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// SessionFromContext pulls the resolved session from a request context.
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	return session, ok
}

func extractSessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(constvars.CookieSessionToken); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authorization := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(authorization, "Bearer ") {
		return strings.TrimPrefix(authorization, "Bearer ")
	}
	return ""
}
