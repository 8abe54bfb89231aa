package models

// ClientState mirrors the per-device UI state the portals rely on. A subset
// of it survives reloads through the durable store; the transient flags
// always start false.
type ClientState struct {
	User             *User  `json:"user"`
	IsAuthenticated  bool   `json:"isAuthenticated"`
	SelectedLanguage string `json:"selectedLanguage"`
	LastPortal       string `json:"lastPortal,omitempty"`
	RememberedEmail  string `json:"rememberedEmail,omitempty"`
	RememberMe       bool   `json:"rememberMe"`
	IsLoading        bool   `json:"isLoading"`
	IsProcessing     bool   `json:"isProcessing"`
}

// PersistedState is the durable blob written under the storage key. Only
// these fields round-trip; everything else is rebuilt on load.
type PersistedState struct {
	User             *User  `json:"user"`
	IsAuthenticated  bool   `json:"isAuthenticated"`
	SelectedLanguage string `json:"selectedLanguage"`
}
