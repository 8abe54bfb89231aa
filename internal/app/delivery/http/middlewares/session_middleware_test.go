package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	session *models.Session
	err     error
	token   string
}

func (f *fakeSessionService) Create(ctx context.Context, portal string, user *models.User, backendToken, identityToken string) (string, error) {
	return "", nil
}

func (f *fakeSessionService) Resolve(ctx context.Context, cookieToken string) (*models.Session, error) {
	f.token = cookieToken
	return f.session, f.err
}

func (f *fakeSessionService) Destroy(ctx context.Context, cookieToken string) error {
	return nil
}

func TestSessionRequired(t *testing.T) {
	session := &models.Session{ID: "session-1", Portal: constvars.PortalPatient, User: &models.User{ID: "user-1"}}

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := SessionFromContext(r.Context())
		assert.True(t, ok, "session should be in the context")
		assert.Equal(t, "session-1", got.ID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("cookie token resolves", func(t *testing.T) {
		sessions := &fakeSessionService{session: session}
		m := &Middlewares{Log: zap.NewNop(), SessionService: sessions}

		req := httptest.NewRequest("GET", "/api/v1/patient/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieSessionToken, Value: "cookie-token"})

		rr := httptest.NewRecorder()
		m.SessionRequired(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "cookie-token", sessions.token)
	})

	t.Run("bearer header is a fallback", func(t *testing.T) {
		sessions := &fakeSessionService{session: session}
		m := &Middlewares{Log: zap.NewNop(), SessionService: sessions}

		req := httptest.NewRequest("GET", "/api/v1/patient/dashboard", nil)
		req.Header.Set("Authorization", "Bearer header-token")

		rr := httptest.NewRecorder()
		m.SessionRequired(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "header-token", sessions.token)
	})

	t.Run("no token is rejected", func(t *testing.T) {
		m := &Middlewares{Log: zap.NewNop(), SessionService: &fakeSessionService{}}

		req := httptest.NewRequest("GET", "/api/v1/patient/dashboard", nil)
		rr := httptest.NewRecorder()
		m.SessionRequired(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run without a session")
		})).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unresolvable token is rejected", func(t *testing.T) {
		sessions := &fakeSessionService{err: exceptions.ErrSessionInvalid(fmt.Errorf("gone"))}
		m := &Middlewares{Log: zap.NewNop(), SessionService: sessions}

		req := httptest.NewRequest("GET", "/api/v1/patient/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieSessionToken, Value: "stale"})

		rr := httptest.NewRecorder()
		m.SessionRequired(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run with an invalid session")
		})).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestSessionOptional(t *testing.T) {
	t.Run("request passes without a session", func(t *testing.T) {
		m := &Middlewares{Log: zap.NewNop(), SessionService: &fakeSessionService{}}

		req := httptest.NewRequest("POST", "/api/v1/assistant/chat", nil)
		rr := httptest.NewRecorder()
		m.SessionOptional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := SessionFromContext(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("session rides along when present", func(t *testing.T) {
		sessions := &fakeSessionService{session: &models.Session{ID: "session-1"}}
		m := &Middlewares{Log: zap.NewNop(), SessionService: sessions}

		req := httptest.NewRequest("POST", "/api/v1/assistant/chat", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieSessionToken, Value: "cookie-token"})

		rr := httptest.NewRecorder()
		m.SessionOptional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := SessionFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, "session-1", got.ID)
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestDeviceIDMiddleware(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop()}

	t.Run("mints a device cookie for a fresh browser", func(t *testing.T) {
		var seen string
		req := httptest.NewRequest("GET", "/api/v1/preferences", nil)
		rr := httptest.NewRecorder()

		m.DeviceIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(constvars.CONTEXT_DEVICE_ID_KEY).(string)
		})).ServeHTTP(rr, req)

		assert.NotEmpty(t, seen)

		cookies := rr.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, constvars.CookieDeviceID, cookies[0].Name)
		assert.Equal(t, seen, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("reuses an existing device cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/preferences", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieDeviceID, Value: "device-known"})
		rr := httptest.NewRecorder()

		m.DeviceIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			deviceID, _ := r.Context().Value(constvars.CONTEXT_DEVICE_ID_KEY).(string)
			assert.Equal(t, "device-known", deviceID)
		})).ServeHTTP(rr, req)

		assert.Empty(t, rr.Result().Cookies(), "no new cookie for a known device")
	})
}

func TestRateLimiter(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("burst is allowed then the ip is blocked", func(t *testing.T) {
		limiter := NewRateLimiter(2, time.Minute, time.Minute, zap.NewNop())
		handler := limiter.Limit(okHandler)

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
			req.RemoteAddr = "10.0.0.1:5000"
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusOK, rr.Code, "request %d within the burst", i+1)
		}

		req := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)

		// Still blocked, even before the limiter would refill.
		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	})

	t.Run("ips are limited independently", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute, time.Minute, zap.NewNop())
		handler := limiter.Limit(okHandler)

		first := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
		first.RemoteAddr = "10.0.0.1:5000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, first)
		assert.Equal(t, http.StatusOK, rr.Code)

		second := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
		second.RemoteAddr = "10.0.0.2:5000"
		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, second)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
