package requests

type Login struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	RememberMe bool   `json:"remember_me"`
	Portal     string `json:"-"`
}

type Signup struct {
	Name            string `json:"name" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"password"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Phone           string `json:"phone,omitempty"`
	AcceptTerms     bool   `json:"accept_terms" validate:"accepted"`

	// Patient-only
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`

	// Doctor-only
	LicenseNumber  string `json:"license_number,omitempty"`
	Specialization string `json:"specialization,omitempty"`

	// Uploader-only
	FacilityName    string `json:"facility_name,omitempty"`
	FacilityType    string `json:"facility_type,omitempty"`
	FacilityAddress string `json:"facility_address,omitempty"`

	Portal string `json:"-"`
}

// Handoff carries the credentials extracted from an identity-provider
// redirect. Fragment tokens and the authorization code are mutually
// optional; the flow fails when neither is present.
type Handoff struct {
	Portal       string
	Code         string
	AccessToken  string
	RefreshToken string
	DeviceID     string
}
