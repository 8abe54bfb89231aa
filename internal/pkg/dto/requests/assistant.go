package requests

type ChatMessage struct {
	Message  string `json:"message" validate:"required,min=1,max=2000"`
	Language string `json:"language,omitempty"`
}

type SetLanguage struct {
	Language string `json:"language" validate:"required"`
}
