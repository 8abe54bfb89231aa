package appstate

import (
	"context"
	"fmt"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/exceptions"
	"ayuraksha-service/internal/pkg/i18n"
)

type appStateService struct {
	Store contracts.ClientStateStore
}

func NewAppStateService(store contracts.ClientStateStore) contracts.AppStateService {
	return &appStateService{Store: store}
}

func (svc *appStateService) Load(ctx context.Context, deviceID string) (*models.ClientState, error) {
	return svc.Store.Load(ctx, deviceID)
}

func (svc *appStateService) SetUser(ctx context.Context, deviceID string, user *models.User) (*models.ClientState, error) {
	return svc.mutate(ctx, deviceID, func(state *models.ClientState) {
		ApplyUser(state, user)
	})
}

func (svc *appStateService) ClearUser(ctx context.Context, deviceID string) (*models.ClientState, error) {
	return svc.mutate(ctx, deviceID, func(state *models.ClientState) {
		ApplyClearUser(state)
	})
}

func (svc *appStateService) SetLanguage(ctx context.Context, deviceID, language string) (*models.ClientState, error) {
	if !i18n.IsSupported(language) {
		return nil, exceptions.ErrUnknownLanguage(fmt.Errorf("language %q is not supported", language))
	}
	return svc.mutate(ctx, deviceID, func(state *models.ClientState) {
		ApplyLanguage(state, language)
	})
}

func (svc *appStateService) SetLastPortal(ctx context.Context, deviceID, portal string) (*models.ClientState, error) {
	return svc.mutate(ctx, deviceID, func(state *models.ClientState) {
		ApplyLastPortal(state, portal)
	})
}

func (svc *appStateService) SetRemembered(ctx context.Context, deviceID, email string, remember bool) (*models.ClientState, error) {
	return svc.mutate(ctx, deviceID, func(state *models.ClientState) {
		ApplyRemembered(state, email, remember)
	})
}

func (svc *appStateService) mutate(ctx context.Context, deviceID string, apply func(*models.ClientState)) (*models.ClientState, error) {
	state, err := svc.Store.Load(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	apply(state)
	if err := svc.Store.Persist(ctx, deviceID, state); err != nil {
		return nil, err
	}
	return state, nil
}
