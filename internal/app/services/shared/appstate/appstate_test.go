package appstate

import (
	"context"
	"testing"

	"ayuraksha-service/internal/app/models"
	"ayuraksha-service/internal/pkg/constvars"
	"ayuraksha-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func TestTransitions(t *testing.T) {
	t.Run("initial state", func(t *testing.T) {
		state := NewClientState()
		assert.Nil(t, state.User)
		assert.False(t, state.IsAuthenticated)
		assert.Equal(t, constvars.DefaultLanguage, state.SelectedLanguage)
		assert.False(t, state.IsLoading)
		assert.False(t, state.IsProcessing)
	})

	t.Run("setting a user authenticates and settles the flags", func(t *testing.T) {
		state := NewClientState()
		state.IsLoading = true
		state.IsProcessing = true

		user := &models.User{ID: "user-1", Name: "Asha Verma"}
		ApplyUser(state, user)
		assert.True(t, state.IsAuthenticated)
		assert.Equal(t, user, state.User)
		assert.False(t, state.IsLoading)
		assert.False(t, state.IsProcessing)
	})

	t.Run("setting the same user twice is a no-op", func(t *testing.T) {
		state := NewClientState()
		user := &models.User{ID: "user-1"}
		ApplyUser(state, user)
		before := *state
		ApplyUser(state, user)
		assert.Equal(t, before, *state)
	})

	t.Run("setting a nil user deauthenticates", func(t *testing.T) {
		state := NewClientState()
		ApplyUser(state, &models.User{ID: "user-1"})
		ApplyUser(state, nil)
		assert.False(t, state.IsAuthenticated)
		assert.Nil(t, state.User)
	})

	t.Run("clearing a user keeps language and remembered login", func(t *testing.T) {
		state := NewClientState()
		ApplyUser(state, &models.User{ID: "user-1"})
		ApplyLanguage(state, constvars.LanguageHindi)
		ApplyRemembered(state, "asha@example.com", true)

		ApplyClearUser(state)
		assert.False(t, state.IsAuthenticated)
		assert.Nil(t, state.User)
		assert.Equal(t, constvars.LanguageHindi, state.SelectedLanguage)
		assert.Equal(t, "asha@example.com", state.RememberedEmail)
		assert.True(t, state.RememberMe)
	})

	t.Run("forgetting remember-me wipes the email", func(t *testing.T) {
		state := NewClientState()
		ApplyRemembered(state, "asha@example.com", true)
		ApplyRemembered(state, "ignored@example.com", false)
		assert.False(t, state.RememberMe)
		assert.Empty(t, state.RememberedEmail)
	})
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryClientStateStore()

	t.Run("unknown device loads the initial state", func(t *testing.T) {
		state, err := store.Load(ctx, "fresh-device")
		assert.NoError(t, err)
		assert.False(t, state.IsAuthenticated)
		assert.Equal(t, constvars.DefaultLanguage, state.SelectedLanguage)
	})

	t.Run("transient flags never survive a reload", func(t *testing.T) {
		state := NewClientState()
		ApplyUser(state, &models.User{ID: "user-1"})
		state.IsLoading = true
		state.IsProcessing = true
		assert.NoError(t, store.Persist(ctx, "device-1", state))

		reloaded, err := store.Load(ctx, "device-1")
		assert.NoError(t, err)
		assert.True(t, reloaded.IsAuthenticated)
		assert.False(t, reloaded.IsLoading)
		assert.False(t, reloaded.IsProcessing)
	})

	t.Run("clear drops the user but keeps portal and remembered login", func(t *testing.T) {
		state := NewClientState()
		ApplyUser(state, &models.User{ID: "user-2"})
		ApplyLastPortal(state, constvars.PortalDoctor)
		ApplyRemembered(state, "meera@example.com", true)
		assert.NoError(t, store.Persist(ctx, "device-2", state))

		assert.NoError(t, store.Clear(ctx, "device-2"))

		reloaded, err := store.Load(ctx, "device-2")
		assert.NoError(t, err)
		assert.Nil(t, reloaded.User)
		assert.False(t, reloaded.IsAuthenticated)
		assert.Equal(t, constvars.PortalDoctor, reloaded.LastPortal)
		assert.Equal(t, "meera@example.com", reloaded.RememberedEmail)
		assert.True(t, reloaded.RememberMe)
	})

	t.Run("devices are isolated", func(t *testing.T) {
		state := NewClientState()
		ApplyUser(state, &models.User{ID: "user-3"})
		assert.NoError(t, store.Persist(ctx, "device-3", state))

		other, err := store.Load(ctx, "device-4")
		assert.NoError(t, err)
		assert.False(t, other.IsAuthenticated)
	})
}

func TestAppStateService(t *testing.T) {
	ctx := context.Background()

	t.Run("mutations persist through the store", func(t *testing.T) {
		svc := NewAppStateService(NewMemoryClientStateStore())

		_, err := svc.SetUser(ctx, "device-1", &models.User{ID: "user-1"})
		assert.NoError(t, err)
		_, err = svc.SetLastPortal(ctx, "device-1", constvars.PortalUploader)
		assert.NoError(t, err)

		state, err := svc.Load(ctx, "device-1")
		assert.NoError(t, err)
		assert.True(t, state.IsAuthenticated)
		assert.Equal(t, constvars.PortalUploader, state.LastPortal)
	})

	t.Run("unsupported language is rejected", func(t *testing.T) {
		svc := NewAppStateService(NewMemoryClientStateStore())

		_, err := svc.SetLanguage(ctx, "device-2", "fr")
		assert.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))

		state, loadErr := svc.Load(ctx, "device-2")
		assert.NoError(t, loadErr)
		assert.Equal(t, constvars.DefaultLanguage, state.SelectedLanguage)
	})

	t.Run("supported language sticks", func(t *testing.T) {
		svc := NewAppStateService(NewMemoryClientStateStore())

		state, err := svc.SetLanguage(ctx, "device-3", constvars.LanguageHindi)
		assert.NoError(t, err)
		assert.Equal(t, constvars.LanguageHindi, state.SelectedLanguage)
	})
}
