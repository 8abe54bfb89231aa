package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"eqfield":       "must match %s",
	"oneof":         "must be one of [%s]",
	"numeric":       "must be a number",
	"password":      "must be at least 8 characters long",
	"portal":        "must be one of 'patient', 'doctor' or 'uploader'",
	"patient_code":  "must be a 10 to 20 digit number",
	"document_type": "must be a known document type",
	"accepted":      "must be accepted",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something wrong with the application"
	ErrClientNotAuthorized                 = "you are not authorized"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientMissingHandoffToken           = "missing access token, please try logging in again"
	ErrClientHandoffInProgress             = "sign-in is already being completed, please wait a moment"
	ErrClientAuthenticationFailed          = "authentication failed, please try logging in again"
	ErrClientBackendUnavailable            = "service is temporarily unavailable, please try again later"
	ErrClientBackendSyncFailed             = "failed to sync with backend"
	ErrClientPatientNotFound               = "patient not found, please check the ID"
	ErrClientInvalidPatientCode            = "please enter a valid patient ID (10-20 digits)"
	ErrClientInvalidFileType               = "only JPG, PNG, and PDF files are allowed"
	ErrClientFileTooLarge                  = "maximum file size is 10MB"
	ErrClientRecordNotFound                = "record not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientUnknownLanguage               = "unknown language"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
)

// Error messages for developers
const (
	ErrDevValidationFailed        = "validation failed"
	ErrDevCannotParseJSON         = "cannot parse JSON body"
	ErrDevCannotParseMultipart    = "cannot parse multipart form"
	ErrDevCannotMarshalJSON       = "cannot marshal JSON"
	ErrDevCreateHTTPRequest       = "failed to create HTTP request"
	ErrDevSendHTTPRequest         = "failed to send HTTP request"
	ErrDevDecodeResponse          = "failed to decode %s response"
	ErrDevServerDeadlineExceeded  = "server deadline exceeded"
	ErrDevAuthTokenMissing        = "authorization token missing"
	ErrDevAuthTokenInvalid        = "authorization token invalid or expired"
	ErrDevAuthSigningMethod       = "unexpected JWT signing method"
	ErrDevAuthGenerateToken       = "failed to generate session token"
	ErrDevAuthSessionInvalid      = "session not found or expired"
	ErrDevHandoffNoCredential     = "redirect carried neither fragment tokens nor a code"
	ErrDevHandoffDuplicate        = "another hand-off is in flight for this device"
	ErrDevHandoffTokenExpired     = "identity access token already expired"
	ErrDevIdentityProvider        = "identity provider returned an error"
	ErrDevIdentityExchangeCode    = "identity provider code exchange failed"
	ErrDevIdentitySetSession      = "identity provider session could not be established"
	ErrDevIdentityGetUser         = "identity provider user fetch failed"
	ErrDevBackendSync             = "backend session sync failed"
	ErrDevBackendRequest          = "backend request failed"
	ErrDevBackendMalformed        = "backend response shape not recognized"
	ErrDevRedisGetData            = "failed to get data from redis"
	ErrDevRedisSetData            = "failed to set data to redis"
	ErrDevRedisDeleteData         = "failed to delete data from redis"
	ErrDevStateLoad               = "failed to load client state"
	ErrDevStatePersist            = "failed to persist client state"
	ErrDevUploadUnsupportedType   = "upload content type not in the allowed set"
	ErrDevUploadTooLarge          = "upload exceeds the configured size limit"
	ErrDevInvalidInput            = "invalid input"
)
