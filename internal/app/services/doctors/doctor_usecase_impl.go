package doctors

import (
	"context"
	"fmt"
	"sort"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/dto/responses"
	"ayuraksha-service/internal/pkg/exceptions"
	"ayuraksha-service/internal/pkg/mockdata"

	"go.uber.org/zap"
)

const recentRecordLimit = 5

type doctorUsecase struct {
	BackendClient contracts.BackendClient
	Log           *zap.Logger
}

func NewDoctorUsecase(backendClient contracts.BackendClient, logger *zap.Logger) contracts.DoctorUsecase {
	return &doctorUsecase{
		BackendClient: backendClient,
		Log:           logger,
	}
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context, session *models.Session) (*responses.DoctorList, error) {
	doctors, source := uc.fetchDoctors(ctx, session)
	return &responses.DoctorList{Doctors: doctors, Source: source}, nil
}

func (uc *doctorUsecase) GetDoctor(ctx context.Context, session *models.Session, doctorID string) (*responses.DoctorDetail, error) {
	doctors, source := uc.fetchDoctors(ctx, session)
	for i := range doctors {
		if doctors[i].ID == doctorID {
			return &responses.DoctorDetail{Doctor: &doctors[i], Source: source}, nil
		}
	}
	return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s not found", doctorID))
}

func (uc *doctorUsecase) Dashboard(ctx context.Context, session *models.Session) (*responses.DoctorDashboard, error) {
	records, source := uc.fetchPracticeRecords(ctx, session)

	sort.SliceStable(records, func(i, j int) bool { return records[i].Date > records[j].Date })
	recent := records
	if len(recent) > recentRecordLimit {
		recent = recent[:recentRecordLimit]
	}

	patients := map[string]struct{}{}
	for _, record := range records {
		if record.PatientID != "" {
			patients[record.PatientID] = struct{}{}
		}
	}

	return &responses.DoctorDashboard{
		PatientCount:  len(patients),
		RecentRecords: recent,
		Source:        source,
	}, nil
}

// fetchDoctors never fails the request: the directory degrades to the
// sample profiles on any backend error.
func (uc *doctorUsecase) fetchDoctors(ctx context.Context, session *models.Session) ([]models.DoctorProfile, string) {
	doctors, err := uc.BackendClient.ListDoctors(ctx, session.Token)
	if err != nil || len(doctors) == 0 {
		if err != nil {
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			uc.Log.Warn("doctorUsecase falling back to sample directory",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		return mockdata.Doctors(), responses.SourceSample
	}
	return doctors, responses.SourceBackend
}

func (uc *doctorUsecase) fetchPracticeRecords(ctx context.Context, session *models.Session) ([]models.MedicalRecord, string) {
	doctorID := ""
	if session.User != nil {
		doctorID = session.User.ID
	}

	records, err := uc.BackendClient.ListRecords(ctx, session.Token, "")
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("doctorUsecase falling back to sample records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return mockdata.Records(), responses.SourceSample
	}

	if doctorID == "" {
		return records, responses.SourceBackend
	}
	owned := make([]models.MedicalRecord, 0, len(records))
	for _, record := range records {
		if record.DoctorID == "" || record.DoctorID == doctorID {
			owned = append(owned, record)
		}
	}
	return owned, responses.SourceBackend
}
