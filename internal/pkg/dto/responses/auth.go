package responses

import "ayuraksha-service/internal/app/models"

type Login struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type Signup struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Handoff is the outcome of a completed session hand-off: the canonical
// user, the minted session token for the auth_token cookie, and the portal
// dashboard route to navigate to. RetryRoute is only set on failure paths.
type Handoff struct {
	User          *models.User `json:"user,omitempty"`
	Token         string       `json:"-"`
	Portal        string       `json:"portal"`
	RedirectRoute string       `json:"redirect_route,omitempty"`
	RetryRoute    string       `json:"retry_route,omitempty"`
}

type Me struct {
	User   *models.User `json:"user"`
	Portal string       `json:"portal"`
}
