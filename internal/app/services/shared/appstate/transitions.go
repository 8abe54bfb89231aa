package appstate

import (
	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/constvars"
)

// NewClientState returns the initial state a device sees before anything is
// persisted. Transient flags always start false, including on reload.
func NewClientState() *models.ClientState {
	return &models.ClientState{
		SelectedLanguage: constvars.DefaultLanguage,
	}
}

// ApplyUser records an authenticated user. Applying the same user twice
// leaves the state unchanged.
func ApplyUser(state *models.ClientState, user *models.User) {
	state.User = user
	state.IsAuthenticated = user != nil
	state.IsLoading = false
	state.IsProcessing = false
}

// ApplyClearUser drops the user and the authenticated flag, leaving the
// language choice and the remembered login untouched.
func ApplyClearUser(state *models.ClientState) {
	state.User = nil
	state.IsAuthenticated = false
	state.IsLoading = false
	state.IsProcessing = false
}

func ApplyLanguage(state *models.ClientState, language string) {
	state.SelectedLanguage = language
}

func ApplyLastPortal(state *models.ClientState, portal string) {
	state.LastPortal = portal
}

// ApplyRemembered stores or forgets the login email. Turning remember-me
// off also wipes the stored email.
func ApplyRemembered(state *models.ClientState, email string, remember bool) {
	state.RememberMe = remember
	if remember {
		state.RememberedEmail = email
	} else {
		state.RememberedEmail = ""
	}
}
