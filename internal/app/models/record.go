package models

// MedicalRecord is a read-only view model. Records come from the backend or
// from the static sample set; the service only filters and sorts them.
type MedicalRecord struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Date       string `json:"date"`
	Doctor     string `json:"doctor"`
	Clinic     string `json:"clinic"`
	Findings   string `json:"findings"`
	Status     string `json:"status"`
	PatientID  string `json:"patientId,omitempty"`
	DoctorID   string `json:"doctorId,omitempty"`
	FileURL    string `json:"fileUrl,omitempty"`
	Filename   string `json:"filename,omitempty"`
	Size       int64  `json:"size,omitempty"`
	FileKey    string `json:"fileKey,omitempty"`
	Diagnosis  string `json:"diagnosis,omitempty"`
	DoctorName string `json:"doctorName,omitempty"`
}

// LocalizedText carries the per-language variants of an alert field.
type LocalizedText struct {
	English string `json:"English"`
	Hindi   string `json:"Hindi"`
}

type Alert struct {
	ID      string        `json:"id"`
	Type    string        `json:"type"`
	Title   LocalizedText `json:"title"`
	Summary LocalizedText `json:"summary"`
	Details LocalizedText `json:"details"`
	Date    string        `json:"date"`
}

type DoctorProfile struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Specialty string   `json:"specialty"`
	Rating    float64  `json:"rating"`
	Distance  string   `json:"distance"`
	Location  string   `json:"location"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Address   string   `json:"address"`
	About     string   `json:"about"`
	Services  []string `json:"services"`
}

// UploadReceipt describes one completed upload in the uploader history.
type UploadReceipt struct {
	ID           string `json:"id"`
	PatientCode  string `json:"patientCode"`
	PatientName  string `json:"patientName,omitempty"`
	DocumentType string `json:"documentType"`
	Filename     string `json:"fileName"`
	Size         int64  `json:"fileSize"`
	Status       string `json:"status"`
	UploadedBy   string `json:"uploadedBy,omitempty"`
	UploadedAt   string `json:"uploadDate"`
}
