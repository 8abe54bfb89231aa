package contracts

import (
	"context"

	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/dto/requests"
	"ayuraksha-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, deviceID string, request *requests.Login) (*responses.Login, string, error)
	Signup(ctx context.Context, deviceID string, request *requests.Signup) (*responses.Signup, string, error)
	CompleteHandoff(ctx context.Context, request *requests.Handoff) (*responses.Handoff, error)
	Logout(ctx context.Context, deviceID, cookieToken string) error
	Me(ctx context.Context, session *models.Session) (*responses.Me, error)
}
