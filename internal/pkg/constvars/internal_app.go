package constvars

type ContextKey string

const (
	PortalPatient  = "patient"
	PortalDoctor   = "doctor"
	PortalUploader = "uploader"
)

// DashboardRoutes maps a resolved portal to its dashboard route. Unknown
// portals must degrade to the patient dashboard.
var DashboardRoutes = map[string]string{
	PortalPatient:  "/patient/dashboard",
	PortalDoctor:   "/doctor/dashboard",
	PortalUploader: "/uploader/dashboard",
}

// LoginRoutes maps a resolved portal to its login route, used by the
// hand-off error state's retry action.
var LoginRoutes = map[string]string{
	PortalPatient:  "/patient/login",
	PortalDoctor:   "/doctor/login",
	PortalUploader: "/uploader/login",
}

const (
	CookieSessionToken = "auth_token"
	CookieUser         = "user"
	CookieDeviceID     = "ar_device"

	CookieMaxAgeDays = 7
)

// Durable client storage keys, namespaced per device under one redis hash.
const (
	StorageBlobKey       = "ayu-raksha-storage"
	StorageLastPortalKey = "lastPortal"
	StorageRememberMeKey = "rememberMe"
	StorageEmailKey      = "email"
)

const (
	DefaultLanguage = "English"
	LanguageHindi   = "Hindi"
)

// Document types accepted by the uploader portal, matching the backend's
// vocabulary.
var DocumentTypes = []string{
	"blood-report",
	"mri-scan",
	"xray",
	"ct-scan",
	"prescription",
	"pathology",
	"ultrasound",
	"ecg",
	"other",
}

const (
	UploadMaxSizeInMB    = 10
	PatientCodeMinDigits = 10
	PatientCodeMaxDigits = 20
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_DEVICE_ID_KEY            ContextKey = "device_id"
)

const (
	REQUEST_ID_PREFIX = "AYRK_SVC_"

	SessionRedisPrefix     = "session:"
	ClientStoreRedisPrefix = "clientstore:"
	HandoffLockRedisPrefix = "handoff-lock:"
)
