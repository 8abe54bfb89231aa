package doctors

import (
	"context"
	"fmt"
	"testing"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/dto/responses"
	"ayuraksha-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubBackend struct {
	contracts.BackendClient

	doctors    []models.DoctorProfile
	doctorsErr error

	records    []models.MedicalRecord
	recordsErr error
}

func (s *stubBackend) ListDoctors(ctx context.Context, token string) ([]models.DoctorProfile, error) {
	return s.doctors, s.doctorsErr
}

func (s *stubBackend) ListRecords(ctx context.Context, token, patientCode string) ([]models.MedicalRecord, error) {
	return s.records, s.recordsErr
}

func doctorSession() *models.Session {
	return &models.Session{
		ID:     "session-1",
		Portal: constvars.PortalDoctor,
		Token:  "backend-token",
		User:   &models.User{ID: "doc-1", Type: constvars.PortalDoctor},
	}
}

func TestListDoctors(t *testing.T) {
	t.Run("backend directory", func(t *testing.T) {
		backend := &stubBackend{
			doctors: []models.DoctorProfile{{ID: "doc-1", Name: "Dr. Meera Nair"}},
		}
		uc := NewDoctorUsecase(backend, zap.NewNop())

		result, err := uc.ListDoctors(context.Background(), doctorSession())
		assert.NoError(t, err)
		assert.Equal(t, responses.SourceBackend, result.Source)
		assert.Len(t, result.Doctors, 1)
	})

	t.Run("any backend error degrades to the sample directory", func(t *testing.T) {
		backend := &stubBackend{
			doctorsErr: exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("session gone")),
		}
		uc := NewDoctorUsecase(backend, zap.NewNop())

		result, err := uc.ListDoctors(context.Background(), doctorSession())
		assert.NoError(t, err, "the directory never fails the request")
		assert.Equal(t, responses.SourceSample, result.Source)
		assert.NotEmpty(t, result.Doctors)
	})

	t.Run("empty backend directory degrades to samples", func(t *testing.T) {
		uc := NewDoctorUsecase(&stubBackend{}, zap.NewNop())

		result, err := uc.ListDoctors(context.Background(), doctorSession())
		assert.NoError(t, err)
		assert.Equal(t, responses.SourceSample, result.Source)
	})
}

func TestGetDoctor(t *testing.T) {
	backend := &stubBackend{
		doctors: []models.DoctorProfile{
			{ID: "doc-1", Name: "Dr. Meera Nair"},
			{ID: "doc-2", Name: "Dr. Rohan Pillai"},
		},
	}
	uc := NewDoctorUsecase(backend, zap.NewNop())

	t.Run("found", func(t *testing.T) {
		result, err := uc.GetDoctor(context.Background(), doctorSession(), "doc-2")
		assert.NoError(t, err)
		assert.Equal(t, "Dr. Rohan Pillai", result.Doctor.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := uc.GetDoctor(context.Background(), doctorSession(), "doc-999")
		assert.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestDoctorDashboard(t *testing.T) {
	t.Run("counts distinct patients and keeps the five newest records", func(t *testing.T) {
		backend := &stubBackend{
			records: []models.MedicalRecord{
				{ID: "rec-1", Date: "2025-10-01", PatientID: "pat-1", DoctorID: "doc-1"},
				{ID: "rec-2", Date: "2025-11-12", PatientID: "pat-2", DoctorID: "doc-1"},
				{ID: "rec-3", Date: "2025-09-20", PatientID: "pat-1", DoctorID: "doc-1"},
				{ID: "rec-4", Date: "2025-11-03", PatientID: "pat-3"},
				{ID: "rec-5", Date: "2025-08-14", PatientID: "pat-2", DoctorID: "doc-1"},
				{ID: "rec-6", Date: "2025-07-30", PatientID: "pat-4", DoctorID: "doc-1"},
			},
		}
		uc := NewDoctorUsecase(backend, zap.NewNop())

		result, err := uc.Dashboard(context.Background(), doctorSession())
		assert.NoError(t, err)
		assert.Equal(t, 4, result.PatientCount)
		assert.Len(t, result.RecentRecords, 5)
		assert.Equal(t, "rec-2", result.RecentRecords[0].ID)
	})

	t.Run("records of other doctors are filtered out", func(t *testing.T) {
		backend := &stubBackend{
			records: []models.MedicalRecord{
				{ID: "rec-1", Date: "2025-10-01", PatientID: "pat-1", DoctorID: "doc-1"},
				{ID: "rec-2", Date: "2025-11-12", PatientID: "pat-9", DoctorID: "doc-other"},
			},
		}
		uc := NewDoctorUsecase(backend, zap.NewNop())

		result, err := uc.Dashboard(context.Background(), doctorSession())
		assert.NoError(t, err)
		assert.Equal(t, 1, result.PatientCount)
		assert.Len(t, result.RecentRecords, 1)
	})

	t.Run("backend failure serves the sample records", func(t *testing.T) {
		backend := &stubBackend{
			recordsErr: exceptions.ErrBackendRequest(fmt.Errorf("backend down")),
		}
		uc := NewDoctorUsecase(backend, zap.NewNop())

		result, err := uc.Dashboard(context.Background(), doctorSession())
		assert.NoError(t, err)
		assert.Equal(t, responses.SourceSample, result.Source)
	})
}
