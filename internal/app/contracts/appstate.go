package contracts

import (
	"context"

	"ayuraksha-service/internal/app/models"
)

// ClientStateStore persists per-device client state across requests the way
// the portals persist it across reloads.
type ClientStateStore interface {
	Load(ctx context.Context, deviceID string) (*models.ClientState, error)
	Persist(ctx context.Context, deviceID string, state *models.ClientState) error
	Clear(ctx context.Context, deviceID string) error
}

type AppStateService interface {
	Load(ctx context.Context, deviceID string) (*models.ClientState, error)
	SetUser(ctx context.Context, deviceID string, user *models.User) (*models.ClientState, error)
	ClearUser(ctx context.Context, deviceID string) (*models.ClientState, error)
	SetLanguage(ctx context.Context, deviceID, language string) (*models.ClientState, error)
	SetLastPortal(ctx context.Context, deviceID, portal string) (*models.ClientState, error)
	SetRemembered(ctx context.Context, deviceID, email string, remember bool) (*models.ClientState, error)
}
