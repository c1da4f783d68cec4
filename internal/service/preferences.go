package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bloom/internal/domain"
	"bloom/internal/repository"
	"bloom/pkg/validator"
)

type PreferencesServiceImpl struct {
	repo   repository.PreferencesRepository
	logger *zap.Logger
}

func NewPreferencesService(repo repository.PreferencesRepository, logger *zap.Logger) *PreferencesServiceImpl {
	return &PreferencesServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *PreferencesServiceImpl) Get(ctx context.Context) (*domain.ContactPreferences, error) {
	preferences, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Error("ошибка получения контактных предпочтений", zap.Error(err))
		return nil, err
	}
	return preferences, nil
}

func (s *PreferencesServiceImpl) Save(ctx context.Context, preferences domain.ContactPreferences) error {
	if preferences.Email != "" && !validator.ValidateEmail(preferences.Email) {
		s.logger.Warn("некорректный email в контактных предпочтениях", zap.String("email", preferences.Email))
		return fmt.Errorf("%w: некорректный email", domain.ErrValidation)
	}

	if preferences.Phone != "" {
		if !validator.ValidatePhone(preferences.Phone) {
			s.logger.Warn("некорректный телефон в контактных предпочтениях", zap.String("phone", preferences.Phone))
			return fmt.Errorf("%w: некорректный номер телефона", domain.ErrValidation)
		}
		preferences.Phone = validator.FormatPhone(preferences.Phone)
	}

	if err := s.repo.Save(ctx, preferences); err != nil {
		s.logger.Error("ошибка сохранения контактных предпочтений", zap.Error(err))
		return err
	}

	return nil
}
