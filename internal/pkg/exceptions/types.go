package exceptions

import (
	"ayuraksha-service/internal/pkg/constvars"
	"fmt"
)

var (
	// Parsing and validation
	ErrInputValidation = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, KindValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrSignupFieldRequired = func(err error, clientMessage string) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, KindValidation, clientMessage, constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipart)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// Auth and session
	ErrTokenMissing = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, KindAuth, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, KindAuth, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrSessionInvalid = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, KindAuth, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthSessionInvalid)
	}
	ErrInvalidEmailOrPassword = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, KindAuth, constvars.ErrClientInvalidEmailOrPassword, constvars.ErrDevIdentityProvider)
	}
	ErrPasswordsDoNotMatch = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientPasswordsDoNotMatch, constvars.ErrDevInvalidInput)
	}

	// Hand-off flow
	ErrHandoffMissingCredential = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, KindAuth, constvars.ErrClientMissingHandoffToken, constvars.ErrDevHandoffNoCredential)
	}
	ErrHandoffInProgress = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusConflict, KindAuth, constvars.ErrClientHandoffInProgress, constvars.ErrDevHandoffDuplicate)
	}
	ErrHandoffTokenExpired = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, KindAuth, constvars.ErrClientAuthenticationFailed, constvars.ErrDevHandoffTokenExpired)
	}

	// Identity provider
	ErrIdentityProvider = func(err error, providerMessage string) *CustomError {
		clientMessage := constvars.ErrClientAuthenticationFailed
		if providerMessage != "" {
			clientMessage = providerMessage
		}
		return buildNewCustomError(err, constvars.StatusUnauthorized, KindAuth, clientMessage, constvars.ErrDevIdentityProvider)
	}
	ErrIdentityExchangeCode = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, KindAuth, constvars.ErrClientAuthenticationFailed, constvars.ErrDevIdentityExchangeCode)
	}
	ErrIdentitySetSession = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, KindAuth, constvars.ErrClientAuthenticationFailed, constvars.ErrDevIdentitySetSession)
	}
	ErrIdentityGetUser = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, KindAuth, constvars.ErrClientAuthenticationFailed, constvars.ErrDevIdentityGetUser)
	}

	// Backend API
	ErrBackendSync = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadGateway, KindNetwork, constvars.ErrClientBackendSyncFailed, constvars.ErrDevBackendSync)
	}
	ErrBackendRequest = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadGateway, KindNetwork, constvars.ErrClientBackendUnavailable, constvars.ErrDevBackendRequest)
	}
	ErrBackendMalformed = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadGateway, KindNetwork, constvars.ErrClientBackendUnavailable, constvars.ErrDevBackendMalformed)
	}
	ErrBackendMessage = func(statusCode int, message string) *CustomError {
		kind := KindNetwork
		if statusCode == constvars.StatusUnauthorized || statusCode == constvars.StatusForbidden {
			kind = KindAuth
		}
		if message == "" {
			message = constvars.ErrClientCannotProcessRequest
		}
		return buildNewCustomError(nil, statusCode, kind, message, fmt.Sprintf("backend replied %d", statusCode))
	}

	// HTTP plumbing
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadGateway, KindNetwork, constvars.ErrClientBackendUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, source string) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadGateway, KindNetwork, constvars.ErrClientBackendUnavailable, fmt.Sprintf(constvars.ErrDevDecodeResponse, source))
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusGatewayTimeout, KindNetwork, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}

	// Client state store
	ErrStateLoad = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStateLoad)
	}
	ErrStatePersist = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStatePersist)
	}

	// Uploader
	ErrInvalidPatientCode = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientInvalidPatientCode, constvars.ErrDevInvalidInput)
	}
	ErrPatientNotFound = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusNotFound, KindValidation, constvars.ErrClientPatientNotFound, constvars.ErrDevInvalidInput)
	}
	ErrUploadInvalidFileType = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientInvalidFileType, constvars.ErrDevUploadUnsupportedType)
	}
	ErrUploadFileTooLarge = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusPayloadTooLarge, KindValidation, constvars.ErrClientFileTooLarge, constvars.ErrDevUploadTooLarge)
	}

	// Lookups
	ErrRecordNotFound = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusNotFound, KindValidation, constvars.ErrClientRecordNotFound, constvars.ErrDevInvalidInput)
	}
	ErrDoctorNotFound = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusNotFound, KindValidation, constvars.ErrClientDoctorNotFound, constvars.ErrDevInvalidInput)
	}
	ErrUnknownLanguage = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientUnknownLanguage, constvars.ErrDevInvalidInput)
	}
)
