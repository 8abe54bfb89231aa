package contracts

import (
	"context"

	"ayuraksha-service/internal/app/models"
)

// SessionService owns the application session: a redis entry addressed by
// the session id carried in the signed cookie token.
type SessionService interface {
	Create(ctx context.Context, portal string, user *models.User, backendToken, identityToken string) (cookieToken string, err error)
	Resolve(ctx context.Context, cookieToken string) (*models.Session, error)
	Destroy(ctx context.Context, cookieToken string) error
}
