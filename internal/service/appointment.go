package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bloom/config"
	"bloom/internal/domain"
	"bloom/internal/repository"
)

const confirmationPrefix = "BLM"

// Количество попыток получить уникальный номер подтверждения,
// после исчерпания коллизия принимается как допустимый риск
const confirmationAttempts = 5

type AppointmentServiceImpl struct {
	repo         repository.AppointmentRepository
	providerRepo repository.ProviderRepository
	cfg          config.BookingConfig
	logger       *zap.Logger
	now          func() time.Time
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	providerRepo repository.ProviderRepository,
	cfg config.BookingConfig,
	logger *zap.Logger,
) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		repo:         repo,
		providerRepo: providerRepo,
		cfg:          cfg,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *AppointmentServiceImpl) Book(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
	provider, err := s.providerRepo.GetByID(ctx, dto.ProviderID)
	if err != nil {
		s.logger.Error("провайдер не найден при создании записи", zap.String("providerID", dto.ProviderID), zap.Error(err))
		return nil, err
	}

	// Имитация сетевой задержки; отмена контекста прерывает ожидание
	if s.cfg.SimulatedLatency > 0 {
		timer := time.NewTimer(s.cfg.SimulatedLatency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	confirmationNumber, err := s.generateConfirmationNumber(ctx)
	if err != nil {
		s.logger.Error("ошибка генерации номера подтверждения", zap.Error(err))
		return nil, err
	}

	now := s.now()
	appointment := domain.Appointment{
		ID:                 uuid.New().String(),
		ProviderID:         provider.ID,
		ProviderName:       provider.Name,
		Date:               dto.Date,
		Time:               dto.Time,
		Reason:             dto.Reason,
		VisitType:          dto.VisitType,
		ConfirmationNumber: confirmationNumber,
		Status:             domain.AppointmentStatusConfirmed,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		s.logger.Error("ошибка сохранения записи на приём", zap.Error(err))
		return nil, fmt.Errorf("ошибка при создании записи: %w", err)
	}

	s.logger.Info("запись на приём создана",
		zap.String("id", appointment.ID),
		zap.String("providerID", appointment.ProviderID),
		zap.String("confirmation", appointment.ConfirmationNumber))

	return &appointment, nil
}

// Cancel переводит запись в терминальный статус cancelled.
// Повторная отмена уже отмененной записи считается успехом.
func (s *AppointmentServiceImpl) Cancel(ctx context.Context, id string) error {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("запись для отмены не найдена", zap.String("id", id), zap.Error(err))
		return err
	}

	if appointment.Status == domain.AppointmentStatusCancelled {
		return nil
	}

	appointment.Status = domain.AppointmentStatusCancelled
	appointment.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, *appointment); err != nil {
		s.logger.Error("ошибка отмены записи", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("ошибка при отмене записи: %w", err)
	}

	s.logger.Info("запись на приём отменена", zap.String("id", id))
	return nil
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("ошибка получения записи", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentServiceImpl) GetByConfirmation(ctx context.Context, confirmationNumber string) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByConfirmation(ctx, confirmationNumber)
	if err != nil {
		s.logger.Error("запись по номеру подтверждения не найдена", zap.String("confirmation", confirmationNumber), zap.Error(err))
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentServiceImpl) GetUpcoming(ctx context.Context) ([]domain.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ошибка получения списка записей", zap.Error(err))
		return nil, err
	}

	today := s.today()
	upcoming := make([]domain.Appointment, 0, len(appointments))

	for _, appointment := range appointments {
		if appointment.Status == domain.AppointmentStatusCancelled {
			continue
		}

		date, err := appointment.AppointmentDate()
		if err != nil {
			s.logger.Warn("запись с некорректной датой", zap.String("id", appointment.ID), zap.String("date", appointment.Date))
			continue
		}

		if !date.Before(today) {
			upcoming = append(upcoming, appointment)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date < upcoming[j].Date
	})

	return upcoming, nil
}

func (s *AppointmentServiceImpl) GetPast(ctx context.Context) ([]domain.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ошибка получения списка записей", zap.Error(err))
		return nil, err
	}

	today := s.today()
	past := make([]domain.Appointment, 0, len(appointments))

	// Прошедшие записи включают отмененные, история сохраняется
	for _, appointment := range appointments {
		date, err := appointment.AppointmentDate()
		if err != nil {
			s.logger.Warn("запись с некорректной датой", zap.String("id", appointment.ID), zap.String("date", appointment.Date))
			continue
		}

		if date.Before(today) {
			past = append(past, appointment)
		}
	}

	sort.SliceStable(past, func(i, j int) bool {
		return past[i].Date > past[j].Date
	})

	return past, nil
}

func (s *AppointmentServiceImpl) generateConfirmationNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < confirmationAttempts; attempt++ {
		number := fmt.Sprintf("%s%d", confirmationPrefix, 100000+rand.Intn(900000))

		_, err := s.repo.GetByConfirmation(ctx, number)
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			return number, nil
		}
		if err != nil {
			return "", err
		}
	}

	// Все попытки дали коллизию, берем последний сгенерированный номер
	return fmt.Sprintf("%s%d", confirmationPrefix, 100000+rand.Intn(900000)), nil
}

// today возвращает календарную дату в UTC, как и распарсенные даты записей
func (s *AppointmentServiceImpl) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
