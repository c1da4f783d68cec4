package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bloom/internal/domain"
	"bloom/internal/repository"
	"bloom/pkg/store"
)

func newPreferencesService(t *testing.T) *PreferencesServiceImpl {
	t.Helper()

	documents, err := store.NewDocumentStore(t.TempDir())
	require.NoError(t, err)

	return NewPreferencesService(repository.NewPreferencesStore(documents), zap.NewNop())
}

func TestPreferencesDefaultChannels(t *testing.T) {
	svc := newPreferencesService(t)

	preferences, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.True(t, preferences.Channels.Email)
	assert.False(t, preferences.Channels.Phone)
	assert.False(t, preferences.Channels.Mail)
}

func TestPreferencesSaveFormatsPhone(t *testing.T) {
	svc := newPreferencesService(t)

	err := svc.Save(context.Background(), domain.ContactPreferences{
		Phone:    "+1 (555) 123-4567",
		Email:    "john.smith@example.com",
		Channels: domain.ContactChannels{Email: true, Phone: true},
	})
	require.NoError(t, err)

	saved, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "+15551234567", saved.Phone)
	assert.Equal(t, "john.smith@example.com", saved.Email)
	assert.True(t, saved.Channels.Phone)
}

func TestPreferencesRejectsInvalidEmail(t *testing.T) {
	svc := newPreferencesService(t)

	err := svc.Save(context.Background(), domain.ContactPreferences{Email: "not-an-email"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestPreferencesRejectsInvalidPhone(t *testing.T) {
	svc := newPreferencesService(t)

	err := svc.Save(context.Background(), domain.ContactPreferences{Phone: "123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}
