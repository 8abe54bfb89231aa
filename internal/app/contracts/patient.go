package contracts

import (
	"context"

	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/dto/requests"
	"ayuraksha-service/internal/pkg/dto/responses"
)

// PatientUsecase serves the patient portal. Reads degrade to the static
// sample set when the backend is unreachable or the user carries no patient
// code; every response says which source it came from.
type PatientUsecase interface {
	Dashboard(ctx context.Context, session *models.Session) (*responses.PatientDashboard, error)
	ListRecords(ctx context.Context, session *models.Session, request *requests.ListRecords) (*responses.RecordList, error)
	GetRecord(ctx context.Context, session *models.Session, recordID string) (*responses.RecordDetail, error)
	Timeline(ctx context.Context, session *models.Session) (*responses.Timeline, error)
	ListAlerts(ctx context.Context, session *models.Session, language string) (*responses.AlertList, error)
	SyncRecords(ctx context.Context, session *models.Session) (*responses.RecordList, error)
}

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, session *models.Session) (*responses.DoctorList, error)
	GetDoctor(ctx context.Context, session *models.Session, doctorID string) (*responses.DoctorDetail, error)
	Dashboard(ctx context.Context, session *models.Session) (*responses.DoctorDashboard, error)
}

type UploaderUsecase interface {
	VerifyPatient(ctx context.Context, session *models.Session, request *requests.VerifyPatient) (*responses.VerifyPatient, error)
	Upload(ctx context.Context, session *models.Session, request *requests.UploadDocument) (*responses.Upload, error)
	History(ctx context.Context, session *models.Session) (*responses.UploadHistory, error)
}

type AssistantUsecase interface {
	Chat(ctx context.Context, deviceID string, request *requests.ChatMessage) (*responses.ChatReply, error)
	GetPreferences(ctx context.Context, deviceID string) (*responses.Preferences, error)
	SetLanguage(ctx context.Context, deviceID, language string) (*responses.Preferences, error)
}
