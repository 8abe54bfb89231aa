package responses

import "ayuraksha-service/internal/app/models"

type VerifyPatient struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	Sex  string `json:"sex"`
}

type Upload struct {
	Receipt *models.UploadReceipt `json:"receipt"`
}

type UploadHistory struct {
	Uploads []models.UploadReceipt `json:"uploads"`
	Total   int                    `json:"total"`
}

type ChatReply struct {
	Reply     string `json:"reply"`
	Sender    string `json:"sender"`
	DelayInMs int    `json:"delay_in_ms"`
}

type Preferences struct {
	SelectedLanguage string   `json:"selected_language"`
	Languages        []string `json:"languages"`
}
