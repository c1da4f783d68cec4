package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bloom/config"
	"bloom/internal/domain"
	"bloom/internal/repository"
	"bloom/pkg/store"
)

var confirmationRegexp = regexp.MustCompile(`^BLM\d{6}$`)

func newAppointmentService(t *testing.T, latency time.Duration) (*AppointmentServiceImpl, *repository.AppointmentStore) {
	t.Helper()

	documents, err := store.NewDocumentStore(t.TempDir())
	require.NoError(t, err)

	appointments, err := repository.NewAppointmentStore(documents)
	require.NoError(t, err)

	svc := NewAppointmentService(
		appointments,
		repository.NewProviderRepository(),
		config.BookingConfig{SimulatedLatency: latency},
		zap.NewNop(),
	)
	return svc, appointments
}

func bookingDTO(providerID string) domain.CreateAppointmentDTO {
	return domain.CreateAppointmentDTO{
		ProviderID: providerID,
		Date:       "2030-06-15",
		Time:       "10:00 AM",
		Reason:     "Annual Checkup",
		VisitType:  domain.VisitTypeInPerson,
	}
}

func TestBookCreatesConfirmedAppointment(t *testing.T) {
	svc, _ := newAppointmentService(t, 0)

	appointment, err := svc.Book(context.Background(), bookingDTO("p1"))
	require.NoError(t, err)
	require.NotNil(t, appointment)

	assert.NotEmpty(t, appointment.ID)
	assert.Equal(t, domain.AppointmentStatusConfirmed, appointment.Status)
	assert.Regexp(t, confirmationRegexp, appointment.ConfirmationNumber)
	assert.Equal(t, "Dr. Sarah Johnson", appointment.ProviderName)
	assert.Equal(t, "2030-06-15", appointment.Date)

	found, err := svc.GetByConfirmation(context.Background(), appointment.ConfirmationNumber)
	require.NoError(t, err)
	assert.Equal(t, appointment.ID, found.ID)
}

func TestBookUnknownProviderPersistsNothing(t *testing.T) {
	svc, appointments := newAppointmentService(t, 0)

	_, err := svc.Book(context.Background(), bookingDTO("missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProviderNotFound))

	all, err := appointments.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBookCancelledContextAbortsWait(t *testing.T) {
	svc, appointments := newAppointmentService(t, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Book(ctx, bookingDTO("p1"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	all, err := appointments.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCancelIsTerminalAndIdempotent(t *testing.T) {
	svc, _ := newAppointmentService(t, 0)

	appointment, err := svc.Book(context.Background(), bookingDTO("p1"))
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), appointment.ID))

	cancelled, err := svc.GetByID(context.Background(), appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusCancelled, cancelled.Status)

	// Повторная отмена тоже успех
	require.NoError(t, svc.Cancel(context.Background(), appointment.ID))

	upcoming, err := svc.GetUpcoming(context.Background())
	require.NoError(t, err)
	for _, a := range upcoming {
		assert.NotEqual(t, appointment.ID, a.ID)
	}
}

func TestCancelUnknownAppointment(t *testing.T) {
	svc, _ := newAppointmentService(t, 0)

	err := svc.Cancel(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAppointmentNotFound))
}

func TestUpcomingAndPastPartition(t *testing.T) {
	svc, appointments := newAppointmentService(t, 0)
	svc.now = func() time.Time {
		return time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	}

	seed := []struct {
		id     string
		date   string
		status domain.AppointmentStatus
	}{
		{"past-kept", "2026-06-01", domain.AppointmentStatusConfirmed},
		{"past-cancelled", "2026-05-01", domain.AppointmentStatusCancelled},
		{"today", "2026-06-15", domain.AppointmentStatusConfirmed},
		{"future-late", "2026-08-01", domain.AppointmentStatusConfirmed},
		{"future-early", "2026-07-01", domain.AppointmentStatusConfirmed},
		{"future-cancelled", "2026-07-15", domain.AppointmentStatusCancelled},
	}
	for _, s := range seed {
		require.NoError(t, appointments.Create(context.Background(), domain.Appointment{
			ID:                 s.id,
			ProviderID:         "p1",
			Date:               s.date,
			Time:               "10:00 AM",
			Status:             s.status,
			ConfirmationNumber: "BLM" + s.id,
		}))
	}

	upcoming, err := svc.GetUpcoming(context.Background())
	require.NoError(t, err)

	// Сегодняшняя дата считается предстоящей, отмененные исключены
	require.Len(t, upcoming, 3)
	assert.Equal(t, "today", upcoming[0].ID)
	assert.Equal(t, "future-early", upcoming[1].ID)
	assert.Equal(t, "future-late", upcoming[2].ID)

	past, err := svc.GetPast(context.Background())
	require.NoError(t, err)

	// История включает отмененные записи, сортировка от новых к старым
	require.Len(t, past, 2)
	assert.Equal(t, "past-kept", past[0].ID)
	assert.Equal(t, "past-cancelled", past[1].ID)
}

func TestConfirmationNumbersStayUniqueAcrossBookings(t *testing.T) {
	svc, _ := newAppointmentService(t, 0)

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		appointment, err := svc.Book(context.Background(), bookingDTO("p2"))
		require.NoError(t, err)

		assert.Regexp(t, confirmationRegexp, appointment.ConfirmationNumber)
		_, dup := seen[appointment.ConfirmationNumber]
		assert.False(t, dup, "повторный номер подтверждения %s", appointment.ConfirmationNumber)
		seen[appointment.ConfirmationNumber] = struct{}{}
	}
}
