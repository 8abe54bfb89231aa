package contracts

import (
	"context"
	"io"

	"ayuraksha-service/internal/app/models"
)

// BackendAuthResult is the canonical outcome of any backend operation that
// authenticates a user, whatever envelope shape the backend used.
type BackendAuthResult struct {
	User  *models.User
	Token string
}

// PatientSummary is the minimal patient identity the uploader portal shows
// after verifying a patient code.
type PatientSummary struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

// DashboardSummary is the backend-computed patient dashboard. Older backend
// versions lack the endpoint, in which case the patient service synthesizes
// the same shape from the record and alert lists.
type DashboardSummary struct {
	TotalRecords  int                    `json:"totalRecords"`
	RecentRecords []models.MedicalRecord `json:"recentRecords"`
	AlertCount    int                    `json:"alertCount"`
}

// UploadDocumentInput carries one multipart document towards the backend.
type UploadDocumentInput struct {
	PatientCode  string
	DocumentType string
	Filename     string
	ContentType  string
	Size         int64
	File         io.Reader
}

// BackendClient fronts the remote record-management API. Bearer tokens are
// the backend's own tokens except for SyncSession, which presents the
// identity provider's credential pair.
type BackendClient interface {
	Login(ctx context.Context, email, password, portal string) (*BackendAuthResult, error)
	Signup(ctx context.Context, payload map[string]interface{}) (*BackendAuthResult, error)
	SyncSession(ctx context.Context, tokens *IdentityTokens, portal string, profile *IdentityUser) (*BackendAuthResult, error)
	GetMe(ctx context.Context, token string) (*models.User, error)
	GetDashboard(ctx context.Context, token, patientCode string) (*DashboardSummary, error)
	FindPatientByCode(ctx context.Context, token, patientCode string) (*PatientSummary, error)
	ListRecords(ctx context.Context, token, patientCode string) ([]models.MedicalRecord, error)
	SyncRecords(ctx context.Context, token, patientCode string) ([]models.MedicalRecord, error)
	ListAlerts(ctx context.Context, token, patientCode string) ([]models.Alert, error)
	ListDoctors(ctx context.Context, token string) ([]models.DoctorProfile, error)
	UploadDocument(ctx context.Context, token string, input *UploadDocumentInput) (*models.UploadReceipt, error)
	ListUploads(ctx context.Context, token string) ([]models.UploadReceipt, error)
}
