package auth

import (
	"context"
	"fmt"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/app/services/shared/metrics"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/dto/requests"
	"ayuraksha-service/internal/pkg/dto/responses"
	"ayuraksha-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type authUsecase struct {
	IdentityClient  contracts.IdentityClient
	BackendClient   contracts.BackendClient
	SessionService  contracts.SessionService
	AppStateService contracts.AppStateService
	Locks           contracts.RedisRepository
	Log             *zap.Logger
	Metrics         *metrics.Metrics
}

func NewAuthUsecase(
	identityClient contracts.IdentityClient,
	backendClient contracts.BackendClient,
	sessionService contracts.SessionService,
	appStateService contracts.AppStateService,
	locks contracts.RedisRepository,
	logger *zap.Logger,
	m *metrics.Metrics,
) contracts.AuthUsecase {
	return &authUsecase{
		IdentityClient:  identityClient,
		BackendClient:   backendClient,
		SessionService:  sessionService,
		AppStateService: appStateService,
		Locks:           locks,
		Log:             logger,
		Metrics:         m,
	}
}

func (uc *authUsecase) Login(ctx context.Context, deviceID string, request *requests.Login) (*responses.Login, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPortalKey, request.Portal),
	)

	tokens, _, err := uc.IdentityClient.SignIn(ctx, request.Email, request.Password)
	if err != nil {
		uc.Metrics.IncrementLogin(request.Portal, "provider_rejected")
		return nil, "", err
	}

	result, err := uc.BackendClient.Login(ctx, request.Email, request.Password, request.Portal)
	if err != nil {
		uc.Metrics.IncrementLogin(request.Portal, "backend_failed")
		return nil, "", err
	}

	cookieToken, err := uc.SessionService.Create(ctx, request.Portal, result.User, result.Token, tokens.AccessToken)
	if err != nil {
		return nil, "", err
	}

	if _, err := uc.AppStateService.SetUser(ctx, deviceID, result.User); err != nil {
		return nil, "", err
	}
	if _, err := uc.AppStateService.SetLastPortal(ctx, deviceID, request.Portal); err != nil {
		return nil, "", err
	}
	if _, err := uc.AppStateService.SetRemembered(ctx, deviceID, request.Email, request.RememberMe); err != nil {
		return nil, "", err
	}

	uc.Metrics.IncrementLogin(request.Portal, "success")
	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPortalKey, request.Portal),
	)
	return &responses.Login{User: result.User, Token: result.Token}, cookieToken, nil
}

func (uc *authUsecase) Signup(ctx context.Context, deviceID string, request *requests.Signup) (*responses.Signup, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPortalKey, request.Portal),
	)

	if request.Password != request.ConfirmPassword {
		return nil, "", exceptions.ErrPasswordsDoNotMatch(fmt.Errorf("password confirmation mismatch"))
	}
	if err := validatePortalFields(request); err != nil {
		return nil, "", err
	}

	metadata := signupMetadata(request)
	tokens, _, err := uc.IdentityClient.SignUp(ctx, request.Email, request.Password, metadata)
	if err != nil {
		return nil, "", err
	}

	payload := signupPayload(request)
	result, err := uc.BackendClient.Signup(ctx, payload)
	if err != nil {
		return nil, "", err
	}

	cookieToken, err := uc.SessionService.Create(ctx, request.Portal, result.User, result.Token, tokens.AccessToken)
	if err != nil {
		return nil, "", err
	}

	if _, err := uc.AppStateService.SetUser(ctx, deviceID, result.User); err != nil {
		return nil, "", err
	}
	if _, err := uc.AppStateService.SetLastPortal(ctx, deviceID, request.Portal); err != nil {
		return nil, "", err
	}

	uc.Log.Info("authUsecase.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPortalKey, request.Portal),
	)
	return &responses.Signup{User: result.User, Token: result.Token}, cookieToken, nil
}

func (uc *authUsecase) Logout(ctx context.Context, deviceID, cookieToken string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.Resolve(ctx, cookieToken)
	if err == nil && session.IdentityToken != "" {
		if signOutErr := uc.IdentityClient.SignOut(ctx, session.IdentityToken); signOutErr != nil {
			uc.Log.Warn("authUsecase.Logout provider sign-out failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(signOutErr),
			)
		}
	}

	if err := uc.SessionService.Destroy(ctx, cookieToken); err != nil {
		return err
	}
	if _, err := uc.AppStateService.ClearUser(ctx, deviceID); err != nil {
		return err
	}
	return nil
}

func (uc *authUsecase) Me(ctx context.Context, session *models.Session) (*responses.Me, error) {
	user, err := uc.BackendClient.GetMe(ctx, session.Token)
	if err != nil {
		// The session's snapshot is still a valid answer when the
		// backend is unreachable.
		user = session.User
	}
	return &responses.Me{User: user, Portal: session.Portal}, nil
}

// validatePortalFields enforces the portal-specific requireds the shared
// struct tags cannot express: doctors must present a phone, license number
// and specialization; uploaders a phone and facility name.
func validatePortalFields(request *requests.Signup) error {
	switch request.Portal {
	case constvars.PortalDoctor:
		if len(request.Phone) < 10 {
			return exceptions.ErrSignupFieldRequired(fmt.Errorf("doctor signup without phone"), "phone number is required for doctors")
		}
		if len(request.LicenseNumber) < 5 {
			return exceptions.ErrSignupFieldRequired(fmt.Errorf("doctor signup without license number"), "valid medical license number is required")
		}
		if len(request.Specialization) < 2 {
			return exceptions.ErrSignupFieldRequired(fmt.Errorf("doctor signup without specialization"), "specialization is required")
		}
	case constvars.PortalUploader:
		if len(request.Phone) < 10 {
			return exceptions.ErrSignupFieldRequired(fmt.Errorf("uploader signup without phone"), "phone number is required")
		}
		if len(request.FacilityName) < 3 {
			return exceptions.ErrSignupFieldRequired(fmt.Errorf("uploader signup without facility name"), "facility name is required")
		}
	}
	return nil
}

func signupMetadata(request *requests.Signup) map[string]interface{} {
	metadata := map[string]interface{}{
		"name":   request.Name,
		"portal": request.Portal,
	}
	if request.Phone != "" {
		metadata["phone"] = request.Phone
	}
	return metadata
}

func signupPayload(request *requests.Signup) map[string]interface{} {
	payload := map[string]interface{}{
		"name":     request.Name,
		"email":    request.Email,
		"password": request.Password,
		"portal":   request.Portal,
	}
	if request.Phone != "" {
		payload["phone"] = request.Phone
	}
	switch request.Portal {
	case constvars.PortalPatient:
		if request.DateOfBirth != "" {
			payload["dateOfBirth"] = request.DateOfBirth
		}
		if request.Gender != "" {
			payload["gender"] = request.Gender
		}
	case constvars.PortalDoctor:
		payload["licenseNumber"] = request.LicenseNumber
		payload["specialization"] = request.Specialization
	case constvars.PortalUploader:
		payload["facilityName"] = request.FacilityName
		payload["facilityType"] = request.FacilityType
		payload["facilityAddress"] = request.FacilityAddress
	}
	return payload
}
