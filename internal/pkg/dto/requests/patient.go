package requests

type ListRecords struct {
	Type   string `json:"type,omitempty" validate:"omitempty,document_type"`
	Status string `json:"status,omitempty"`
	Sort   string `json:"sort,omitempty" validate:"omitempty,oneof=date_asc date_desc"`
}

type SyncRecords struct {
	Since string `json:"since,omitempty"`
}
