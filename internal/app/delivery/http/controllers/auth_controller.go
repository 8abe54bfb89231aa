package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/delivery/http/middlewares"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/dto/requests"
	"ayuraksha-service/internal/pkg/exceptions"
	"ayuraksha-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	SessionExpiryH int
	SecureCookies  bool
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, sessionExpiryInHours int, secureCookies bool) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		SessionExpiryH: sessionExpiryInHours,
		SecureCookies:  secureCookies,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.Portal = portalFromQuery(r)

	// Sanitize request
	utils.SanitizeLoginRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, cookieToken, err := ctrl.AuthUsecase.Login(ctx, deviceIDFrom(r), request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.setSessionCookies(w, cookieToken, response.User.Name)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Signup)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.Portal = portalFromQuery(r)

	utils.SanitizeSignupRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, cookieToken, err := ctrl.AuthUsecase.Signup(ctx, deviceIDFrom(r), request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.setSessionCookies(w, cookieToken, response.User.Name)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SignupSuccess, response)
}

// Callback terminates the identity provider redirect. Tokens may arrive as
// query parameters (the provider's fragment is replayed onto the query by
// the login page) or an authorization code; either way the outcome is a
// session cookie plus a portal dashboard redirect.
func (ctrl *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	request := &requests.Handoff{
		Portal:       query.Get("portal"),
		Code:         query.Get("code"),
		AccessToken:  query.Get("access_token"),
		RefreshToken: query.Get("refresh_token"),
		DeviceID:     deviceIDFrom(r),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.AuthUsecase.CompleteHandoff(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		if response != nil {
			ctrl.Log.Warn("hand-off failed",
				zap.String(constvars.LoggingPortalKey, response.Portal),
				zap.Error(err),
			)
			w.Header().Set(constvars.HeaderLocation, response.RetryRoute)
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.setSessionCookies(w, response.Token, response.User.Name)
	w.Header().Set(constvars.HeaderLocation, response.RedirectRoute)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HandoffSuccess, response)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	cookieToken := ""
	if cookie, err := r.Cookie(constvars.CookieSessionToken); err == nil {
		cookieToken = cookie.Value
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AuthUsecase.Logout(ctx, deviceIDFrom(r), cookieToken); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.clearSessionCookies(w)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionInvalid(fmt.Errorf("no session in context")))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AuthUsecase.Me(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileSuccess, response)
}

func (ctrl *AuthController) setSessionCookies(w http.ResponseWriter, cookieToken, userName string) {
	maxAge := ctrl.SessionExpiryH * 60 * 60
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.CookieSessionToken,
		Value:    cookieToken,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   ctrl.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	// The user cookie is readable by the client for display purposes and
	// carries no authority.
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.CookieUser,
		Value:    url.QueryEscape(userName),
		Path:     "/",
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

func (ctrl *AuthController) clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{constvars.CookieSessionToken, constvars.CookieUser} {
		http.SetCookie(w, &http.Cookie{
			Name:   name,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
	}
}
