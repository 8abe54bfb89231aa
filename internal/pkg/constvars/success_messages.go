package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	LoginSuccess   = "login successful"
	SignupSuccess  = "account created successfully"
	LogoutSuccess  = "successfully logout"
	HandoffSuccess = "sign-in completed"
	ProfileSuccess = "get profile successfully"

	// Portal messages
	DashboardSuccess     = "dashboard fetched successfully"
	RecordsSuccess       = "records fetched successfully"
	AlertsSuccess        = "alerts fetched successfully"
	DoctorsSuccess       = "doctors fetched successfully"
	TimelineSuccess      = "timeline fetched successfully"
	RecordsSyncSuccess   = "records sync requested"
	PatientVerifySuccess = "patient verified"
	UploadSuccess        = "document uploaded successfully"
	HistorySuccess       = "upload history fetched successfully"
	ChatSuccess          = "assistant replied"
	PreferenceSuccess    = "preferences updated"
)
