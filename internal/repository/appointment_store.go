package repository

import (
	"context"
	"fmt"
	"sync"

	"bloom/internal/domain"
	"bloom/pkg/store"
)

const appointmentsCollection = "appointments"

// AppointmentStore держит записи в памяти в индексе по id и сбрасывает
// всю коллекцию на диск при каждой мутации. Записи никогда не удаляются,
// отмена лишь переводит статус в cancelled.
type AppointmentStore struct {
	documents *store.DocumentStore

	mu    sync.RWMutex
	items map[string]domain.Appointment
	order []string
}

func NewAppointmentStore(documents *store.DocumentStore) (*AppointmentStore, error) {
	var appointments []domain.Appointment
	if err := documents.Read(appointmentsCollection, &appointments); err != nil {
		return nil, fmt.Errorf("ошибка загрузки записей на приём: %w", err)
	}

	s := &AppointmentStore{
		documents: documents,
		items:     make(map[string]domain.Appointment, len(appointments)),
		order:     make([]string, 0, len(appointments)),
	}

	for _, appointment := range appointments {
		s.items[appointment.ID] = appointment
		s.order = append(s.order, appointment.ID)
	}

	return s, nil
}

func (s *AppointmentStore) Create(_ context.Context, appointment domain.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[appointment.ID]; !exists {
		s.order = append(s.order, appointment.ID)
	}
	s.items[appointment.ID] = appointment

	return s.snapshot()
}

func (s *AppointmentStore) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appointment, ok := s.items[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	return &appointment, nil
}

func (s *AppointmentStore) GetByConfirmation(_ context.Context, confirmationNumber string) (*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		appointment := s.items[id]
		if appointment.ConfirmationNumber == confirmationNumber {
			return &appointment, nil
		}
	}
	return nil, domain.ErrAppointmentNotFound
}

func (s *AppointmentStore) Update(_ context.Context, appointment domain.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[appointment.ID]; !ok {
		return domain.ErrAppointmentNotFound
	}
	s.items[appointment.ID] = appointment

	return s.snapshot()
}

func (s *AppointmentStore) List(_ context.Context) ([]domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appointments := make([]domain.Appointment, 0, len(s.order))
	for _, id := range s.order {
		appointments = append(appointments, s.items[id])
	}
	return appointments, nil
}

// snapshot вызывается под мьютексом
func (s *AppointmentStore) snapshot() error {
	appointments := make([]domain.Appointment, 0, len(s.order))
	for _, id := range s.order {
		appointments = append(appointments, s.items[id])
	}

	if err := s.documents.Write(appointmentsCollection, appointments); err != nil {
		return fmt.Errorf("ошибка сохранения записей на приём: %w", err)
	}
	return nil
}
