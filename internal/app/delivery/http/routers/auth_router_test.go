package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ayuraksha-service/internal/app/delivery/http/controllers"
	"ayuraksha-service/internal/app/delivery/http/middlewares"
	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/dto/requests"
	"ayuraksha-service/internal/pkg/dto/responses"
	"ayuraksha-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, deviceID string, request *requests.Login) (*responses.Login, string, error) {
	args := m.Called(ctx, deviceID, request)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*responses.Login), args.String(1), args.Error(2)
}

func (m *MockAuthUsecase) Signup(ctx context.Context, deviceID string, request *requests.Signup) (*responses.Signup, string, error) {
	args := m.Called(ctx, deviceID, request)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*responses.Signup), args.String(1), args.Error(2)
}

func (m *MockAuthUsecase) CompleteHandoff(ctx context.Context, request *requests.Handoff) (*responses.Handoff, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Handoff), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, deviceID, cookieToken string) error {
	args := m.Called(ctx, deviceID, cookieToken)
	return args.Error(0)
}

func (m *MockAuthUsecase) Me(ctx context.Context, session *models.Session) (*responses.Me, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Me), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, portal string, user *models.User, backendToken, identityToken string) (string, error) {
	args := m.Called(ctx, portal, user, backendToken, identityToken)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Resolve(ctx context.Context, cookieToken string) (*models.Session, error) {
	args := m.Called(ctx, cookieToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) Destroy(ctx context.Context, cookieToken string) error {
	args := m.Called(ctx, cookieToken)
	return args.Error(0)
}

func newAuthRouter(authUsecase *MockAuthUsecase, sessions *MockSessionService) *chi.Mux {
	logger := zap.NewNop()
	mw := &middlewares.Middlewares{Log: logger, SessionService: sessions}
	authController := controllers.NewAuthController(logger, authUsecase, 168, false)
	rateLimiter := middlewares.NewRateLimiter(100, time.Minute, time.Minute, logger)

	router := chi.NewRouter()
	attachAuthRoutes(router, mw, rateLimiter, authController)
	return router
}

func TestAuthRouter_Login(t *testing.T) {
	t.Run("successful login sets the session cookies", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockAuthUsecase.On("Login", mock.Anything, mock.Anything, mock.AnythingOfType("*requests.Login")).Return(
			&responses.Login{User: &models.User{ID: "user-1", Name: "Asha Verma"}, Token: "backend-token"},
			"cookie-token",
			nil,
		)
		router := newAuthRouter(mockAuthUsecase, new(MockSessionService))

		body, _ := json.Marshal(requests.Login{Email: "asha@example.com", Password: "Sup3rSecret!"})
		req := httptest.NewRequest("POST", "/login?portal=patient", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		cookies := rr.Result().Cookies()
		names := map[string]string{}
		for _, cookie := range cookies {
			names[cookie.Name] = cookie.Value
		}
		assert.Equal(t, "cookie-token", names[constvars.CookieSessionToken])
		assert.Contains(t, names[constvars.CookieUser], "Asha")
		mockAuthUsecase.AssertExpectations(t)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		router := newAuthRouter(new(MockAuthUsecase), new(MockSessionService))

		req := httptest.NewRequest("POST", "/login", bytes.NewBufferString("{"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("validation failure is a 400", func(t *testing.T) {
		router := newAuthRouter(new(MockAuthUsecase), new(MockSessionService))

		body, _ := json.Marshal(requests.Login{Email: "not-an-email", Password: "short"})
		req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthRouter_Callback(t *testing.T) {
	t.Run("successful hand-off redirects to the dashboard", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockAuthUsecase.On("CompleteHandoff", mock.Anything, mock.AnythingOfType("*requests.Handoff")).Return(
			&responses.Handoff{
				User:          &models.User{ID: "user-1", Name: "Asha Verma"},
				Token:         "cookie-token",
				Portal:        constvars.PortalPatient,
				RedirectRoute: "/patient/dashboard",
			},
			nil,
		)
		router := newAuthRouter(mockAuthUsecase, new(MockSessionService))

		req := httptest.NewRequest("GET", "/callback?portal=patient&access_token=fragment-access", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "/patient/dashboard", rr.Header().Get("Location"))
	})

	t.Run("failed hand-off points the client at the retry route", func(t *testing.T) {
		mockAuthUsecase := new(MockAuthUsecase)
		mockAuthUsecase.On("CompleteHandoff", mock.Anything, mock.AnythingOfType("*requests.Handoff")).Return(
			&responses.Handoff{Portal: constvars.PortalDoctor, RetryRoute: "/doctor/login"},
			exceptions.ErrHandoffMissingCredential(fmt.Errorf("no credential")),
		)
		router := newAuthRouter(mockAuthUsecase, new(MockSessionService))

		req := httptest.NewRequest("GET", "/callback?portal=doctor", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "/doctor/login", rr.Header().Get("Location"))
	})
}

func TestAuthRouter_Me(t *testing.T) {
	t.Run("without a session the route is unauthorized", func(t *testing.T) {
		router := newAuthRouter(new(MockAuthUsecase), new(MockSessionService))

		req := httptest.NewRequest("GET", "/me", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("with a session the profile comes back", func(t *testing.T) {
		session := &models.Session{ID: "session-1", Portal: constvars.PortalPatient, User: &models.User{ID: "user-1"}}

		sessions := new(MockSessionService)
		sessions.On("Resolve", mock.Anything, "cookie-token").Return(session, nil)

		mockAuthUsecase := new(MockAuthUsecase)
		mockAuthUsecase.On("Me", mock.Anything, session).Return(
			&responses.Me{User: session.User, Portal: constvars.PortalPatient},
			nil,
		)
		router := newAuthRouter(mockAuthUsecase, sessions)

		req := httptest.NewRequest("GET", "/me", nil)
		req.AddCookie(&http.Cookie{Name: constvars.CookieSessionToken, Value: "cookie-token"})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockAuthUsecase.AssertExpectations(t)
	})
}

func TestAuthRouter_Logout(t *testing.T) {
	mockAuthUsecase := new(MockAuthUsecase)
	mockAuthUsecase.On("Logout", mock.Anything, mock.Anything, "cookie-token").Return(nil)
	router := newAuthRouter(mockAuthUsecase, new(MockSessionService))

	req := httptest.NewRequest("POST", "/logout", nil)
	req.AddCookie(&http.Cookie{Name: constvars.CookieSessionToken, Value: "cookie-token"})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	for _, cookie := range rr.Result().Cookies() {
		assert.Less(t, cookie.MaxAge, 0, "cookie %s should be expired", cookie.Name)
	}
	mockAuthUsecase.AssertExpectations(t)
}
