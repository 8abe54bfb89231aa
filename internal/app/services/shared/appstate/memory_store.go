package appstate

import (
	"context"
	"sync"

	"ayuraksha-service/internal/app/contracts"
	"ayuraksha-service/internal/app/models"
)

// memoryClientStateStore is an in-process store used in tests and when no
// redis is configured. It keeps only the persisted subset, so a Load after
// Persist behaves exactly like the redis-backed store.
type memoryClientStateStore struct {
	mu     sync.RWMutex
	states map[string]persistedEntry
}

type persistedEntry struct {
	persisted       models.PersistedState
	lastPortal      string
	rememberedEmail string
	rememberMe      bool
}

func NewMemoryClientStateStore() contracts.ClientStateStore {
	return &memoryClientStateStore{states: make(map[string]persistedEntry)}
}

func (s *memoryClientStateStore) Load(ctx context.Context, deviceID string) (*models.ClientState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := NewClientState()
	entry, ok := s.states[deviceID]
	if !ok {
		return state, nil
	}
	state.User = entry.persisted.User
	state.IsAuthenticated = entry.persisted.IsAuthenticated
	if entry.persisted.SelectedLanguage != "" {
		state.SelectedLanguage = entry.persisted.SelectedLanguage
	}
	state.LastPortal = entry.lastPortal
	state.RememberedEmail = entry.rememberedEmail
	state.RememberMe = entry.rememberMe
	return state, nil
}

func (s *memoryClientStateStore) Persist(ctx context.Context, deviceID string, state *models.ClientState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[deviceID] = persistedEntry{
		persisted: models.PersistedState{
			User:             state.User,
			IsAuthenticated:  state.IsAuthenticated,
			SelectedLanguage: state.SelectedLanguage,
		},
		lastPortal:      state.LastPortal,
		rememberedEmail: state.RememberedEmail,
		rememberMe:      state.RememberMe,
	}
	return nil
}

func (s *memoryClientStateStore) Clear(ctx context.Context, deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.states[deviceID]
	if !ok {
		return nil
	}
	entry.persisted = models.PersistedState{}
	s.states[deviceID] = entry
	return nil
}
