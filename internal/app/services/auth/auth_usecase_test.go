package auth

import (
	"context"
	"fmt"
	"testing"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/dto/requests"
	"ayuraksha-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	newFixture := func() *handoffFixture {
		fx := newHandoffFixture()
		fx.identity.signInTokens = &contracts.IdentityTokens{AccessToken: "identity-access"}
		fx.backend.loginResult = &contracts.BackendAuthResult{
			User:  &models.User{ID: "user-1", Name: "Asha Verma", Email: "asha@example.com", Type: constvars.PortalPatient},
			Token: "backend-token",
		}
		return fx
	}

	t.Run("successful login commits user and preferences", func(t *testing.T) {
		fx := newFixture()
		ctx := context.Background()

		result, cookieToken, err := fx.usecase.Login(ctx, "device-1", &requests.Login{
			Email:      "asha@example.com",
			Password:   "Sup3rSecret!",
			RememberMe: true,
			Portal:     constvars.PortalPatient,
		})

		assert.NoError(t, err)
		assert.Equal(t, "cookie-token", cookieToken)
		assert.Equal(t, "user-1", result.User.ID)
		assert.Equal(t, "backend-token", result.Token)

		state, err := fx.appState.Load(ctx, "device-1")
		assert.NoError(t, err)
		assert.True(t, state.IsAuthenticated)
		assert.Equal(t, constvars.PortalPatient, state.LastPortal)
		assert.True(t, state.RememberMe)
		assert.Equal(t, "asha@example.com", state.RememberedEmail)
	})

	t.Run("remember me off wipes the stored email", func(t *testing.T) {
		fx := newFixture()
		ctx := context.Background()

		_, err := fx.appState.SetRemembered(ctx, "device-2", "old@example.com", true)
		assert.NoError(t, err)

		_, _, err = fx.usecase.Login(ctx, "device-2", &requests.Login{
			Email:    "asha@example.com",
			Password: "Sup3rSecret!",
			Portal:   constvars.PortalPatient,
		})
		assert.NoError(t, err)

		state, err := fx.appState.Load(ctx, "device-2")
		assert.NoError(t, err)
		assert.False(t, state.RememberMe)
		assert.Empty(t, state.RememberedEmail)
	})

	t.Run("provider rejection stops before the backend", func(t *testing.T) {
		fx := newFixture()
		fx.identity.signInErr = exceptions.ErrInvalidEmailOrPassword(fmt.Errorf("invalid credentials"))

		_, _, err := fx.usecase.Login(context.Background(), "device-3", &requests.Login{
			Email:    "asha@example.com",
			Password: "wrong",
			Portal:   constvars.PortalPatient,
		})

		assert.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindAuth))

		state, loadErr := fx.appState.Load(context.Background(), "device-3")
		assert.NoError(t, loadErr)
		assert.False(t, state.IsAuthenticated)
	})
}

func TestSignup(t *testing.T) {
	newFixture := func() *handoffFixture {
		fx := newHandoffFixture()
		fx.identity.signInTokens = &contracts.IdentityTokens{AccessToken: "identity-access"}
		fx.backend.loginResult = &contracts.BackendAuthResult{
			User:  &models.User{ID: "user-9", Name: "Dr. Meera Nair", Type: constvars.PortalDoctor},
			Token: "backend-token",
		}
		return fx
	}

	t.Run("password mismatch fails before the provider", func(t *testing.T) {
		fx := newFixture()

		_, _, err := fx.usecase.Signup(context.Background(), "device-1", &requests.Signup{
			Name:            "Dr. Meera Nair",
			Email:           "meera@example.com",
			Password:        "Sup3rSecret!",
			ConfirmPassword: "different",
			Portal:          constvars.PortalDoctor,
		})

		assert.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
	})

	t.Run("doctor without a license number fails before the provider", func(t *testing.T) {
		fx := newFixture()

		_, _, err := fx.usecase.Signup(context.Background(), "device-1", &requests.Signup{
			Name:            "Dr. Meera Nair",
			Email:           "meera@example.com",
			Password:        "Sup3rSecret!",
			ConfirmPassword: "Sup3rSecret!",
			AcceptTerms:     true,
			Phone:           "9876543210",
			Specialization:  "Cardiology",
			Portal:          constvars.PortalDoctor,
		})

		assert.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
		assert.False(t, fx.identity.signUpCalled)
	})

	t.Run("uploader without a facility name fails before the provider", func(t *testing.T) {
		fx := newFixture()

		_, _, err := fx.usecase.Signup(context.Background(), "device-1", &requests.Signup{
			Name:            "City Scans",
			Email:           "lab@example.com",
			Password:        "Sup3rSecret!",
			ConfirmPassword: "Sup3rSecret!",
			AcceptTerms:     true,
			Phone:           "9876543210",
			Portal:          constvars.PortalUploader,
		})

		assert.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
		assert.False(t, fx.identity.signUpCalled)
	})

	t.Run("doctor without a phone fails before the provider", func(t *testing.T) {
		fx := newFixture()

		_, _, err := fx.usecase.Signup(context.Background(), "device-1", &requests.Signup{
			Name:            "Dr. Meera Nair",
			Email:           "meera@example.com",
			Password:        "Sup3rSecret!",
			ConfirmPassword: "Sup3rSecret!",
			AcceptTerms:     true,
			LicenseNumber:   "MH-12345",
			Specialization:  "Cardiology",
			Portal:          constvars.PortalDoctor,
		})

		assert.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
		assert.False(t, fx.identity.signUpCalled)
	})

	t.Run("successful signup opens a session", func(t *testing.T) {
		fx := newFixture()
		ctx := context.Background()

		result, cookieToken, err := fx.usecase.Signup(ctx, "device-2", &requests.Signup{
			Name:            "Dr. Meera Nair",
			Email:           "meera@example.com",
			Password:        "Sup3rSecret!",
			ConfirmPassword: "Sup3rSecret!",
			AcceptTerms:     true,
			Phone:           "9876543210",
			LicenseNumber:   "MH-12345",
			Specialization:  "Cardiology",
			Portal:          constvars.PortalDoctor,
		})

		assert.NoError(t, err)
		assert.Equal(t, "cookie-token", cookieToken)
		assert.Equal(t, "user-9", result.User.ID)

		state, err := fx.appState.Load(ctx, "device-2")
		assert.NoError(t, err)
		assert.True(t, state.IsAuthenticated)
		assert.Equal(t, constvars.PortalDoctor, state.LastPortal)
	})
}

func TestSignupPayload(t *testing.T) {
	t.Run("patient fields", func(t *testing.T) {
		payload := signupPayload(&requests.Signup{
			Name:        "Asha Verma",
			Email:       "asha@example.com",
			Password:    "Sup3rSecret!",
			DateOfBirth: "1990-04-12",
			Gender:      "female",
			Portal:      constvars.PortalPatient,
		})
		assert.Equal(t, "1990-04-12", payload["dateOfBirth"])
		assert.Equal(t, "female", payload["gender"])
		assert.NotContains(t, payload, "licenseNumber")
	})

	t.Run("uploader fields", func(t *testing.T) {
		payload := signupPayload(&requests.Signup{
			Name:         "City Scans",
			Email:        "lab@example.com",
			Password:     "Sup3rSecret!",
			FacilityName: "City Scans",
			FacilityType: "diagnostic_lab",
			Portal:       constvars.PortalUploader,
		})
		assert.Equal(t, "City Scans", payload["facilityName"])
		assert.Equal(t, "diagnostic_lab", payload["facilityType"])
		assert.NotContains(t, payload, "dateOfBirth")
	})
}

func TestLogout(t *testing.T) {
	t.Run("signs out of the provider and clears state", func(t *testing.T) {
		fx := newHandoffFixture()
		ctx := context.Background()
		fx.sessions.resolved = &models.Session{
			ID:            "session-1",
			Portal:        constvars.PortalPatient,
			User:          &models.User{ID: "user-1"},
			IdentityToken: "identity-access",
		}

		_, err := fx.appState.SetUser(ctx, "device-1", &models.User{ID: "user-1"})
		assert.NoError(t, err)
		_, err = fx.appState.SetLastPortal(ctx, "device-1", constvars.PortalPatient)
		assert.NoError(t, err)

		err = fx.usecase.Logout(ctx, "device-1", "cookie-token")
		assert.NoError(t, err)
		assert.True(t, fx.identity.signOutCalled)
		assert.Equal(t, "cookie-token", fx.sessions.destroyedToken)

		state, err := fx.appState.Load(ctx, "device-1")
		assert.NoError(t, err)
		assert.False(t, state.IsAuthenticated)
		assert.Nil(t, state.User)
		assert.Equal(t, constvars.PortalPatient, state.LastPortal, "last portal survives logout")
	})

	t.Run("provider sign-out failure does not block logout", func(t *testing.T) {
		fx := newHandoffFixture()
		fx.sessions.resolved = &models.Session{ID: "session-1", IdentityToken: "identity-access"}
		fx.identity.signOutErr = fmt.Errorf("provider unreachable")

		err := fx.usecase.Logout(context.Background(), "device-2", "cookie-token")
		assert.NoError(t, err)
		assert.Equal(t, "cookie-token", fx.sessions.destroyedToken)
	})

	t.Run("invalid session still clears local state", func(t *testing.T) {
		fx := newHandoffFixture()
		fx.sessions.resolveErr = exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("bad token"))

		err := fx.usecase.Logout(context.Background(), "device-3", "garbage")
		assert.NoError(t, err)
		assert.False(t, fx.identity.signOutCalled)
	})
}

func TestMe(t *testing.T) {
	session := &models.Session{
		Portal: constvars.PortalPatient,
		User:   &models.User{ID: "user-1", Name: "Asha Verma"},
		Token:  "backend-token",
	}

	t.Run("fresh user from the backend", func(t *testing.T) {
		fx := newHandoffFixture()
		fx.backend.meUser = &models.User{ID: "user-1", Name: "Asha V. Verma"}

		result, err := fx.usecase.Me(context.Background(), session)
		assert.NoError(t, err)
		assert.Equal(t, constvars.PortalPatient, result.Portal)
		assert.Equal(t, "Asha V. Verma", result.User.Name)
	})

	t.Run("backend failure falls back to the session snapshot", func(t *testing.T) {
		fx := newHandoffFixture()
		fx.backend.meErr = exceptions.ErrBackendRequest(fmt.Errorf("backend down"))

		result, err := fx.usecase.Me(context.Background(), session)
		assert.NoError(t, err)
		assert.Equal(t, "Asha Verma", result.User.Name)
	})
}
