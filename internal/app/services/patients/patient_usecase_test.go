package patients

import (
	"context"
	"fmt"
	"testing"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/dto/requests"
	"ayuraksha-service/internal/pkg/dto/responses"
	"ayuraksha-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubBackend struct {
	contracts.BackendClient

	dashboard    *contracts.DashboardSummary
	dashboardErr error

	records    []models.MedicalRecord
	recordsErr error

	synced  []models.MedicalRecord
	syncErr error

	alerts    []models.Alert
	alertsErr error
}

func (s *stubBackend) GetDashboard(ctx context.Context, token, patientCode string) (*contracts.DashboardSummary, error) {
	if s.dashboard != nil {
		return s.dashboard, nil
	}
	if s.dashboardErr != nil {
		return nil, s.dashboardErr
	}
	return nil, exceptions.ErrBackendMalformed(fmt.Errorf("no dashboard endpoint"))
}

func (s *stubBackend) ListRecords(ctx context.Context, token, patientCode string) ([]models.MedicalRecord, error) {
	return s.records, s.recordsErr
}

func (s *stubBackend) SyncRecords(ctx context.Context, token, patientCode string) ([]models.MedicalRecord, error) {
	return s.synced, s.syncErr
}

func (s *stubBackend) ListAlerts(ctx context.Context, token, patientCode string) ([]models.Alert, error) {
	return s.alerts, s.alertsErr
}

func linkedSession() *models.Session {
	return &models.Session{
		ID:     "session-1",
		Portal: constvars.PortalPatient,
		Token:  "backend-token",
		User:   &models.User{ID: "user-1", PatientCode: "1234567890"},
	}
}

func unlinkedSession() *models.Session {
	return &models.Session{
		ID:     "session-2",
		Portal: constvars.PortalPatient,
		Token:  "backend-token",
		User:   &models.User{ID: "user-2"},
	}
}

func testRecords() []models.MedicalRecord {
	return []models.MedicalRecord{
		{ID: "rec-1", Type: "blood-report", Date: "2025-10-01", Status: "Normal"},
		{ID: "rec-2", Type: "xray", Date: "2025-11-12", Status: "Review"},
		{ID: "rec-3", Type: "blood-report", Date: "2025-09-20", Status: "Normal"},
		{ID: "rec-4", Type: "prescription", Date: "2025-11-03", Status: "Normal"},
	}
}

func TestDashboard(t *testing.T) {
	t.Run("backend records, newest first, capped at three", func(t *testing.T) {
		backend := &stubBackend{records: testRecords()}
		uc := NewPatientUsecase(backend, zap.NewNop())

		result, err := uc.Dashboard(context.Background(), linkedSession())
		assert.NoError(t, err)
		assert.Equal(t, 4, result.TotalRecords)
		assert.Len(t, result.RecentRecords, 3)
		assert.Equal(t, "rec-2", result.RecentRecords[0].ID)
		assert.Equal(t, "rec-4", result.RecentRecords[1].ID)
		assert.Equal(t, responses.SourceBackend, result.Source)
	})

	t.Run("backend dashboard endpoint is served as-is", func(t *testing.T) {
		backend := &stubBackend{
			dashboard: &contracts.DashboardSummary{
				TotalRecords:  12,
				RecentRecords: []models.MedicalRecord{{ID: "rec-9", Date: "2025-12-01"}},
				AlertCount:    2,
			},
		}
		uc := NewPatientUsecase(backend, zap.NewNop())

		result, err := uc.Dashboard(context.Background(), linkedSession())
		assert.NoError(t, err)
		assert.Equal(t, 12, result.TotalRecords)
		assert.Equal(t, 2, result.AlertCount)
		if assert.Len(t, result.RecentRecords, 1) {
			assert.Equal(t, "rec-9", result.RecentRecords[0].ID)
		}
		assert.Equal(t, responses.SourceBackend, result.Source)
	})

	t.Run("no patient code serves the sample set", func(t *testing.T) {
		uc := NewPatientUsecase(&stubBackend{}, zap.NewNop())

		result, err := uc.Dashboard(context.Background(), unlinkedSession())
		assert.NoError(t, err)
		assert.Equal(t, responses.SourceSample, result.Source)
		assert.NotZero(t, result.TotalRecords)
	})

	t.Run("unreachable backend serves the sample set", func(t *testing.T) {
		backend := &stubBackend{
			recordsErr: exceptions.ErrBackendRequest(fmt.Errorf("backend down")),
			alertsErr:  exceptions.ErrBackendRequest(fmt.Errorf("backend down")),
		}
		uc := NewPatientUsecase(backend, zap.NewNop())

		result, err := uc.Dashboard(context.Background(), linkedSession())
		assert.NoError(t, err)
		assert.Equal(t, responses.SourceSample, result.Source)
	})
}

func TestListRecords(t *testing.T) {
	uc := NewPatientUsecase(&stubBackend{records: testRecords()}, zap.NewNop())
	ctx := context.Background()

	t.Run("default sort is newest first", func(t *testing.T) {
		result, err := uc.ListRecords(ctx, linkedSession(), &requests.ListRecords{})
		assert.NoError(t, err)
		assert.Equal(t, 4, result.Total)
		assert.Equal(t, "rec-2", result.Records[0].ID)
		assert.Equal(t, "rec-3", result.Records[3].ID)
	})

	t.Run("ascending sort", func(t *testing.T) {
		result, err := uc.ListRecords(ctx, linkedSession(), &requests.ListRecords{Sort: "date_asc"})
		assert.NoError(t, err)
		assert.Equal(t, "rec-3", result.Records[0].ID)
		assert.Equal(t, "rec-2", result.Records[3].ID)
	})

	t.Run("type filter", func(t *testing.T) {
		result, err := uc.ListRecords(ctx, linkedSession(), &requests.ListRecords{Type: "blood-report"})
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Total)
	})

	t.Run("status filter is case insensitive", func(t *testing.T) {
		result, err := uc.ListRecords(ctx, linkedSession(), &requests.ListRecords{Status: "review"})
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Total)
		assert.Equal(t, "rec-2", result.Records[0].ID)
	})

	t.Run("filters can produce an empty list", func(t *testing.T) {
		result, err := uc.ListRecords(ctx, linkedSession(), &requests.ListRecords{Type: "mri-scan"})
		assert.NoError(t, err)
		assert.Zero(t, result.Total)
		assert.Empty(t, result.Records)
	})
}

func TestGetRecord(t *testing.T) {
	uc := NewPatientUsecase(&stubBackend{records: testRecords()}, zap.NewNop())

	t.Run("found", func(t *testing.T) {
		result, err := uc.GetRecord(context.Background(), linkedSession(), "rec-3")
		assert.NoError(t, err)
		assert.Equal(t, "rec-3", result.Record.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := uc.GetRecord(context.Background(), linkedSession(), "rec-999")
		assert.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestTimeline(t *testing.T) {
	uc := NewPatientUsecase(&stubBackend{records: testRecords()}, zap.NewNop())

	result, err := uc.Timeline(context.Background(), linkedSession())
	assert.NoError(t, err)
	assert.Len(t, result.Groups, 3)

	assert.Equal(t, "November 2025", result.Groups[0].Month)
	assert.Len(t, result.Groups[0].Records, 2)
	assert.Equal(t, "rec-2", result.Groups[0].Records[0].ID)

	assert.Equal(t, "October 2025", result.Groups[1].Month)
	assert.Equal(t, "September 2025", result.Groups[2].Month)
}

func TestListAlerts(t *testing.T) {
	alerts := []models.Alert{
		{
			ID:      "alert-1",
			Type:    "warning",
			Title:   models.LocalizedText{English: "High blood sugar", Hindi: "उच्च रक्त शर्करा"},
			Summary: models.LocalizedText{English: "Fasting glucose above range"},
			Date:    "2025-11-01",
		},
	}

	t.Run("hindi variants when requested", func(t *testing.T) {
		uc := NewPatientUsecase(&stubBackend{alerts: alerts}, zap.NewNop())

		result, err := uc.ListAlerts(context.Background(), linkedSession(), constvars.LanguageHindi)
		assert.NoError(t, err)
		assert.Len(t, result.Alerts, 1)
		assert.Equal(t, "उच्च रक्त शर्करा", result.Alerts[0].Title)
		assert.Equal(t, "Fasting glucose above range", result.Alerts[0].Summary, "missing hindi variant falls back to english")
	})

	t.Run("english by default", func(t *testing.T) {
		uc := NewPatientUsecase(&stubBackend{alerts: alerts}, zap.NewNop())

		result, err := uc.ListAlerts(context.Background(), linkedSession(), constvars.DefaultLanguage)
		assert.NoError(t, err)
		assert.Equal(t, "High blood sugar", result.Alerts[0].Title)
	})
}

func TestSyncRecords(t *testing.T) {
	t.Run("synced records come back sorted", func(t *testing.T) {
		backend := &stubBackend{synced: testRecords()}
		uc := NewPatientUsecase(backend, zap.NewNop())

		result, err := uc.SyncRecords(context.Background(), linkedSession())
		assert.NoError(t, err)
		assert.Equal(t, responses.SourceBackend, result.Source)
		assert.Equal(t, "rec-2", result.Records[0].ID)
	})

	t.Run("network failure falls back to the sample set", func(t *testing.T) {
		backend := &stubBackend{syncErr: exceptions.ErrServerDeadlineExceeded(fmt.Errorf("timeout"))}
		uc := NewPatientUsecase(backend, zap.NewNop())

		result, err := uc.SyncRecords(context.Background(), linkedSession())
		assert.NoError(t, err)
		assert.Equal(t, responses.SourceSample, result.Source)
	})

	t.Run("auth failure does not fall back", func(t *testing.T) {
		backend := &stubBackend{syncErr: exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("session gone"))}
		uc := NewPatientUsecase(backend, zap.NewNop())

		_, err := uc.SyncRecords(context.Background(), linkedSession())
		assert.Error(t, err)
	})
}
