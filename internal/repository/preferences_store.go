package repository

import (
	"context"
	"fmt"
	"sync"

	"bloom/internal/domain"
	"bloom/pkg/store"
)

const preferencesCollection = "contact_preferences"

type PreferencesStore struct {
	documents *store.DocumentStore
	mu        sync.Mutex
}

func NewPreferencesStore(documents *store.DocumentStore) *PreferencesStore {
	return &PreferencesStore{documents: documents}
}

func (s *PreferencesStore) Get(_ context.Context) (*domain.ContactPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	preferences := domain.ContactPreferences{
		Channels: domain.ContactChannels{Email: true},
	}
	if err := s.documents.Read(preferencesCollection, &preferences); err != nil {
		return nil, fmt.Errorf("ошибка загрузки контактных предпочтений: %w", err)
	}
	return &preferences, nil
}

func (s *PreferencesStore) Save(_ context.Context, preferences domain.ContactPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.documents.Write(preferencesCollection, preferences); err != nil {
		return fmt.Errorf("ошибка сохранения контактных предпочтений: %w", err)
	}
	return nil
}
