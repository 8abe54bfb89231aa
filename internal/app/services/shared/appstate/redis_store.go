package appstate

import (
	"context"
	"strconv"
	"time"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// redisClientStateStore keeps one hash per device. The storage blob field
// carries the persisted subset as JSON; lastPortal, rememberMe and email
// live beside it as discrete fields so they survive a blob clear.
type redisClientStateStore struct {
	redisRepository contracts.RedisRepository
	retention       time.Duration
}

func NewRedisClientStateStore(redisRepository contracts.RedisRepository, retentionDays int) contracts.ClientStateStore {
	return &redisClientStateStore{
		redisRepository: redisRepository,
		retention:       time.Duration(retentionDays) * 24 * time.Hour,
	}
}

func (s *redisClientStateStore) Load(ctx context.Context, deviceID string) (*models.ClientState, error) {
	fields, err := s.redisRepository.GetHash(ctx, storeKey(deviceID))
	if err != nil {
		return nil, exceptions.ErrStateLoad(err)
	}

	state := NewClientState()
	if blob, ok := fields[constvars.StorageBlobKey]; ok && blob != "" {
		var persisted models.PersistedState
		if err := json.Unmarshal([]byte(blob), &persisted); err != nil {
			return nil, exceptions.ErrStateLoad(err)
		}
		state.User = persisted.User
		state.IsAuthenticated = persisted.IsAuthenticated
		if persisted.SelectedLanguage != "" {
			state.SelectedLanguage = persisted.SelectedLanguage
		}
	}
	state.LastPortal = fields[constvars.StorageLastPortalKey]
	state.RememberedEmail = fields[constvars.StorageEmailKey]
	state.RememberMe, _ = strconv.ParseBool(fields[constvars.StorageRememberMeKey])
	return state, nil
}

func (s *redisClientStateStore) Persist(ctx context.Context, deviceID string, state *models.ClientState) error {
	blob, err := json.Marshal(models.PersistedState{
		User:             state.User,
		IsAuthenticated:  state.IsAuthenticated,
		SelectedLanguage: state.SelectedLanguage,
	})
	if err != nil {
		return exceptions.ErrStatePersist(err)
	}

	key := storeKey(deviceID)
	if err := s.redisRepository.SetHashField(ctx, key, constvars.StorageBlobKey, string(blob)); err != nil {
		return exceptions.ErrStatePersist(err)
	}
	if err := s.redisRepository.SetHashField(ctx, key, constvars.StorageLastPortalKey, state.LastPortal); err != nil {
		return exceptions.ErrStatePersist(err)
	}
	if err := s.redisRepository.SetHashField(ctx, key, constvars.StorageRememberMeKey, strconv.FormatBool(state.RememberMe)); err != nil {
		return exceptions.ErrStatePersist(err)
	}
	if err := s.redisRepository.SetHashField(ctx, key, constvars.StorageEmailKey, state.RememberedEmail); err != nil {
		return exceptions.ErrStatePersist(err)
	}
	if err := s.redisRepository.Expire(ctx, key, s.retention); err != nil {
		return exceptions.ErrStatePersist(err)
	}
	return nil
}

func (s *redisClientStateStore) Clear(ctx context.Context, deviceID string) error {
	// lastPortal, rememberMe and email deliberately survive a clear so the
	// next login lands on the right portal with the form prefilled.
	if err := s.redisRepository.DeleteHashFields(ctx, storeKey(deviceID), constvars.StorageBlobKey); err != nil {
		return exceptions.ErrStatePersist(err)
	}
	return nil
}

func storeKey(deviceID string) string {
	return constvars.ClientStoreRedisPrefix + deviceID
}
