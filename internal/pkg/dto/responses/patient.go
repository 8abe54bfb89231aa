package responses

import "ayuraksha-service/internal/app/models"

// DataSource tells the client whether a payload came from the backend or
// from the static sample fallback.
const (
	SourceBackend = "backend"
	SourceSample  = "sample"
)

type PatientDashboard struct {
	TotalRecords  int                    `json:"total_records"`
	RecentRecords []models.MedicalRecord `json:"recent_records"`
	AlertCount    int                    `json:"alert_count"`
	Source        string                 `json:"source"`
}

type RecordList struct {
	Records []models.MedicalRecord `json:"records"`
	Total   int                    `json:"total"`
	Source  string                 `json:"source"`
}

type RecordDetail struct {
	Record *models.MedicalRecord `json:"record"`
	Source string                `json:"source"`
}

type TimelineGroup struct {
	Month   string                 `json:"month"`
	Records []models.MedicalRecord `json:"records"`
}

type Timeline struct {
	Groups []TimelineGroup `json:"groups"`
	Source string          `json:"source"`
}

// AlertView is an Alert flattened to the selected display language.
type AlertView struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Details string `json:"details"`
	Date    string `json:"date"`
}

type AlertList struct {
	Alerts []AlertView `json:"alerts"`
	Source string      `json:"source"`
}

type DoctorList struct {
	Doctors []models.DoctorProfile `json:"doctors"`
	Source  string                 `json:"source"`
}

type DoctorDetail struct {
	Doctor *models.DoctorProfile `json:"doctor"`
	Source string                `json:"source"`
}

type DoctorDashboard struct {
	PatientCount  int                    `json:"patient_count"`
	RecentRecords []models.MedicalRecord `json:"recent_records"`
	Source        string                 `json:"source"`
}
