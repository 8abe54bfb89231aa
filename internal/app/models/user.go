package models

// User is the canonical user object sourced from backend responses. It lives
// in the client state store until logout or store clear.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Type        string `json:"type"`
	Phone       string `json:"phone,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	PatientCode string `json:"patientCode,omitempty"`
}

// Session is the application session held in redis, addressed by the
// session id carried inside the auth_token cookie JWT.
type Session struct {
	ID            string `json:"id"`
	Portal        string `json:"portal"`
	User          *User  `json:"user"`
	Token         string `json:"token,omitempty"`
	IdentityToken string `json:"identity_token,omitempty"`
	CreatedAt     int64  `json:"created_at"`
}
