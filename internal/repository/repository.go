package repository

import (
	"context"

	"bloom/internal/domain"
	"bloom/pkg/store"
)

type Repositories struct {
	Provider     ProviderRepository
	Appointment  AppointmentRepository
	Policy       PolicyRepository
	Action       ActionRepository
	Illustration IllustrationRepository
	Preferences  PreferencesRepository
}

func NewRepositories(documents *store.DocumentStore) (*Repositories, error) {
	appointments, err := NewAppointmentStore(documents)
	if err != nil {
		return nil, err
	}

	illustrations, err := NewIllustrationStore(documents)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Provider:     NewProviderRepository(),
		Appointment:  appointments,
		Policy:       NewPolicyRepository(),
		Action:       NewActionRepository(),
		Illustration: illustrations,
		Preferences:  NewPreferencesStore(documents),
	}, nil
}

type ProviderRepository interface {
	List(ctx context.Context) ([]domain.Provider, error)
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment domain.Appointment) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetByConfirmation(ctx context.Context, confirmationNumber string) (*domain.Appointment, error)
	Update(ctx context.Context, appointment domain.Appointment) error
	List(ctx context.Context) ([]domain.Appointment, error)
}

type PolicyRepository interface {
	List(ctx context.Context) ([]domain.Policy, error)
	GetByID(ctx context.Context, id string) (*domain.Policy, error)
}

type ActionRepository interface {
	List(ctx context.Context) ([]domain.CustomerAction, error)
	GetByID(ctx context.Context, id string) (*domain.CustomerAction, error)
	Update(ctx context.Context, action domain.CustomerAction) error
}

type IllustrationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Illustration, error)
	ListByPolicy(ctx context.Context, policyID string) ([]domain.Illustration, error)
	CreateRequest(ctx context.Context, request domain.IllustrationRequest) error
	ListRequests(ctx context.Context, policyID *string) ([]domain.IllustrationRequest, error)
}

type PreferencesRepository interface {
	Get(ctx context.Context) (*domain.ContactPreferences, error)
	Save(ctx context.Context, preferences domain.ContactPreferences) error
}
