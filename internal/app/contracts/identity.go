package contracts

import "context"

// IdentityTokens is the credential pair issued by the identity provider.
type IdentityTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// IdentityUser is the provider's view of an account, before the backend
// enriches it into the application user.
type IdentityUser struct {
	ID       string                 `json:"id"`
	Email    string                 `json:"email"`
	Phone    string                 `json:"phone,omitempty"`
	Metadata map[string]interface{} `json:"user_metadata,omitempty"`
}

// DisplayName reads the human name out of the provider metadata; accounts
// created outside our signup flow may carry neither key.
func (u *IdentityUser) DisplayName() string {
	for _, key := range []string{"name", "full_name"} {
		if name, ok := u.Metadata[key].(string); ok && name != "" {
			return name
		}
	}
	return ""
}

type IdentityClient interface {
	SignIn(ctx context.Context, email, password string) (*IdentityTokens, *IdentityUser, error)
	SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) (*IdentityTokens, *IdentityUser, error)
	ExchangeCode(ctx context.Context, code string) (*IdentityTokens, error)
	SetSession(ctx context.Context, tokens *IdentityTokens) (*IdentityTokens, error)
	GetUser(ctx context.Context, accessToken string) (*IdentityUser, error)
	SignOut(ctx context.Context, accessToken string) error
}
