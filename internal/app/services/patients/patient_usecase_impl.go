package patients

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/dto/requests"
	"ayuraksha-service/internal/pkg/dto/responses"
	"ayuraksha-service/internal/pkg/exceptions"
	"ayuraksha-service/internal/pkg/i18n"
	"ayuraksha-service/internal/pkg/mockdata"
	"ayuraksha-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const recentRecordLimit = 3

type patientUsecase struct {
	BackendClient contracts.BackendClient
	Log           *zap.Logger
}

func NewPatientUsecase(backendClient contracts.BackendClient, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		BackendClient: backendClient,
		Log:           logger,
	}
}

func (uc *patientUsecase) Dashboard(ctx context.Context, session *models.Session) (*responses.PatientDashboard, error) {
	if patientCode := patientCodeOf(session); patientCode != "" {
		summary, err := uc.BackendClient.GetDashboard(ctx, session.Token, patientCode)
		if err == nil {
			return &responses.PatientDashboard{
				TotalRecords:  summary.TotalRecords,
				RecentRecords: summary.RecentRecords,
				AlertCount:    summary.AlertCount,
				Source:        responses.SourceBackend,
			}, nil
		}
		// Older backend builds lack the dashboard endpoint; synthesize
		// the same shape from the record and alert lists (which carry
		// their own fallback rules).
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("patientUsecase synthesizing dashboard locally",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	records, source, err := uc.fetchRecords(ctx, session)
	if err != nil {
		return nil, err
	}
	alerts, _, err := uc.fetchAlerts(ctx, session)
	if err != nil {
		return nil, err
	}

	sortRecordsByDateDesc(records)
	recent := records
	if len(recent) > recentRecordLimit {
		recent = recent[:recentRecordLimit]
	}

	return &responses.PatientDashboard{
		TotalRecords:  len(records),
		RecentRecords: recent,
		AlertCount:    len(alerts),
		Source:        source,
	}, nil
}

func (uc *patientUsecase) ListRecords(ctx context.Context, session *models.Session, request *requests.ListRecords) (*responses.RecordList, error) {
	records, source, err := uc.fetchRecords(ctx, session)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.MedicalRecord, 0, len(records))
	for _, record := range records {
		if request.Type != "" && record.Type != request.Type {
			continue
		}
		if request.Status != "" && !strings.EqualFold(record.Status, request.Status) {
			continue
		}
		filtered = append(filtered, record)
	}

	if request.Sort == "date_asc" {
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Date < filtered[j].Date })
	} else {
		sortRecordsByDateDesc(filtered)
	}

	return &responses.RecordList{
		Records: filtered,
		Total:   len(filtered),
		Source:  source,
	}, nil
}

func (uc *patientUsecase) GetRecord(ctx context.Context, session *models.Session, recordID string) (*responses.RecordDetail, error) {
	records, source, err := uc.fetchRecords(ctx, session)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == recordID {
			return &responses.RecordDetail{Record: &records[i], Source: source}, nil
		}
	}
	return nil, exceptions.ErrRecordNotFound(fmt.Errorf("record %s not found", recordID))
}

// Timeline groups records into month buckets, newest month first, keeping
// each bucket's records in descending date order.
func (uc *patientUsecase) Timeline(ctx context.Context, session *models.Session) (*responses.Timeline, error) {
	records, source, err := uc.fetchRecords(ctx, session)
	if err != nil {
		return nil, err
	}
	sortRecordsByDateDesc(records)

	var groups []responses.TimelineGroup
	index := map[string]int{}
	for _, record := range records {
		month := utils.MonthLabel(record.Date)
		pos, ok := index[month]
		if !ok {
			groups = append(groups, responses.TimelineGroup{Month: month})
			pos = len(groups) - 1
			index[month] = pos
		}
		groups[pos].Records = append(groups[pos].Records, record)
	}

	return &responses.Timeline{Groups: groups, Source: source}, nil
}

func (uc *patientUsecase) ListAlerts(ctx context.Context, session *models.Session, language string) (*responses.AlertList, error) {
	alerts, source, err := uc.fetchAlerts(ctx, session)
	if err != nil {
		return nil, err
	}

	views := make([]responses.AlertView, 0, len(alerts))
	for _, alert := range alerts {
		views = append(views, responses.AlertView{
			ID:      alert.ID,
			Type:    alert.Type,
			Title:   i18n.Pick(alert.Title.English, alert.Title.Hindi, language),
			Summary: i18n.Pick(alert.Summary.English, alert.Summary.Hindi, language),
			Details: i18n.Pick(alert.Details.English, alert.Details.Hindi, language),
			Date:    alert.Date,
		})
	}
	return &responses.AlertList{Alerts: views, Source: source}, nil
}

func (uc *patientUsecase) SyncRecords(ctx context.Context, session *models.Session) (*responses.RecordList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.SyncRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patientCode := patientCodeOf(session)
	if patientCode == "" {
		records := mockdata.Records()
		sortRecordsByDateDesc(records)
		return &responses.RecordList{Records: records, Total: len(records), Source: responses.SourceSample}, nil
	}

	records, err := uc.BackendClient.SyncRecords(ctx, session.Token, patientCode)
	if err != nil {
		if exceptions.IsKind(err, exceptions.KindNetwork) {
			uc.Log.Warn("patientUsecase.SyncRecords falling back to sample data",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			records = mockdata.Records()
			sortRecordsByDateDesc(records)
			return &responses.RecordList{Records: records, Total: len(records), Source: responses.SourceSample}, nil
		}
		return nil, err
	}

	sortRecordsByDateDesc(records)
	return &responses.RecordList{Records: records, Total: len(records), Source: responses.SourceBackend}, nil
}

// fetchRecords reads the patient's records, degrading to the sample set
// when no patient code is linked or the backend cannot be reached.
func (uc *patientUsecase) fetchRecords(ctx context.Context, session *models.Session) ([]models.MedicalRecord, string, error) {
	patientCode := patientCodeOf(session)
	if patientCode == "" {
		return mockdata.Records(), responses.SourceSample, nil
	}

	records, err := uc.BackendClient.ListRecords(ctx, session.Token, patientCode)
	if err != nil {
		if exceptions.IsKind(err, exceptions.KindNetwork) {
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			uc.Log.Warn("patientUsecase falling back to sample records",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return mockdata.Records(), responses.SourceSample, nil
		}
		return nil, "", err
	}
	return records, responses.SourceBackend, nil
}

func (uc *patientUsecase) fetchAlerts(ctx context.Context, session *models.Session) ([]models.Alert, string, error) {
	patientCode := patientCodeOf(session)
	if patientCode == "" {
		return mockdata.Alerts(), responses.SourceSample, nil
	}

	alerts, err := uc.BackendClient.ListAlerts(ctx, session.Token, patientCode)
	if err != nil {
		if exceptions.IsKind(err, exceptions.KindNetwork) {
			return mockdata.Alerts(), responses.SourceSample, nil
		}
		return nil, "", err
	}
	return alerts, responses.SourceBackend, nil
}

func patientCodeOf(session *models.Session) string {
	if session == nil || session.User == nil {
		return ""
	}
	return session.User.PatientCode
}

func sortRecordsByDateDesc(records []models.MedicalRecord) {
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date > records[j].Date })
}
