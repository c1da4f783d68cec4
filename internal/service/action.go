package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bloom/internal/domain"
	"bloom/internal/repository"
)

type ActionServiceImpl struct {
	repo   repository.ActionRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewActionService(repo repository.ActionRepository, logger *zap.Logger) *ActionServiceImpl {
	return &ActionServiceImpl{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *ActionServiceImpl) List(ctx context.Context) ([]domain.CustomerAction, error) {
	actions, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ошибка получения списка обращений", zap.Error(err))
		return nil, err
	}
	return actions, nil
}

func (s *ActionServiceImpl) GetByID(ctx context.Context, id string) (*domain.CustomerAction, error) {
	action, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("обращение не найдено", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return action, nil
}

func (s *ActionServiceImpl) UpdateStatus(ctx context.Context, id string, dto domain.UpdateActionStatusDTO) (*domain.CustomerAction, error) {
	action, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("обращение для обновления не найдено", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	note := dto.Note
	if note == "" {
		note = fmt.Sprintf("Status updated to %s", dto.Status)
	}

	now := s.now().UTC()
	action.Status = dto.Status
	action.Lifecycle = append(action.Lifecycle, domain.ActionLifecycle{
		Status:    dto.Status,
		Timestamp: now.Format(time.RFC3339),
		Note:      note,
	})

	if dto.Status == domain.ActionStatusCompleted {
		action.CompletedDate = now.Format("2006-01-02")
	}

	if err := s.repo.Update(ctx, *action); err != nil {
		s.logger.Error("ошибка обновления обращения", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return action, nil
}
