package service

import (
	"context"

	"go.uber.org/zap"

	"bloom/config"
	"bloom/internal/domain"
	"bloom/internal/repository"
	"bloom/internal/storage"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
}

type Services struct {
	Provider     ProviderService
	Appointment  AppointmentService
	Geocoding    GeocodingService
	Policy       PolicyService
	Action       ActionService
	Illustration IllustrationService
	Preferences  PreferencesService
}

func NewServices(deps Deps) *Services {
	return &Services{
		Provider:     NewProviderService(deps.Repos.Provider, deps.Logger),
		Appointment:  NewAppointmentService(deps.Repos.Appointment, deps.Repos.Provider, deps.Config.Booking, deps.Logger),
		Geocoding:    NewGeocodingService(deps.Config.Geocoding, deps.Logger),
		Policy:       NewPolicyService(deps.Repos.Policy, deps.FileStorage, deps.Logger),
		Action:       NewActionService(deps.Repos.Action, deps.Logger),
		Illustration: NewIllustrationService(deps.Repos.Illustration, deps.Repos.Policy, deps.Logger),
		Preferences:  NewPreferencesService(deps.Repos.Preferences, deps.Logger),
	}
}

type ProviderService interface {
	Search(ctx context.Context, filters domain.SearchFilters, location *domain.Location) ([]domain.Provider, error)
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
	GetCountries(ctx context.Context) ([]string, error)
	GetSpecialties(ctx context.Context) ([]string, error)
	GetAvailableTimeSlots(ctx context.Context, providerID, date string) ([]string, error)
	GetVisitReasons(ctx context.Context) ([]string, error)
}

type AppointmentService interface {
	Book(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error)
	Cancel(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetByConfirmation(ctx context.Context, confirmationNumber string) (*domain.Appointment, error)
	GetUpcoming(ctx context.Context) ([]domain.Appointment, error)
	GetPast(ctx context.Context) ([]domain.Appointment, error)
}

type GeocodingService interface {
	SearchAddress(ctx context.Context, query string) ([]domain.GeocodingResult, error)
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error)
}

type PolicyService interface {
	List(ctx context.Context) ([]domain.Policy, error)
	GetByID(ctx context.Context, id string) (*domain.Policy, error)
	UploadDocument(ctx context.Context, policyID string, data []byte, filename string) (string, error)
	ListDocuments(ctx context.Context, policyID string) ([]domain.PolicyDocument, error)
	GetDocumentURL(ctx context.Context, policyID, documentURL string) (string, error)
}

type ActionService interface {
	List(ctx context.Context) ([]domain.CustomerAction, error)
	GetByID(ctx context.Context, id string) (*domain.CustomerAction, error)
	UpdateStatus(ctx context.Context, id string, dto domain.UpdateActionStatusDTO) (*domain.CustomerAction, error)
}

type IllustrationService interface {
	GetByID(ctx context.Context, id string) (*domain.Illustration, error)
	GetByPolicy(ctx context.Context, policyID string) ([]domain.Illustration, error)
	CreateRequest(ctx context.Context, dto domain.CreateIllustrationRequestDTO) (*domain.IllustrationRequest, error)
	ListRequests(ctx context.Context, policyID *string) ([]domain.IllustrationRequest, error)
	IllustratePayout(ctx context.Context, input domain.PayoutIllustrationInput) (*domain.PayoutIllustration, error)
	CalculateCoverageNeeds(ctx context.Context, input domain.CoverageNeedsInput) (*domain.CoverageNeeds, error)
}

type PreferencesService interface {
	Get(ctx context.Context) (*domain.ContactPreferences, error)
	Save(ctx context.Context, preferences domain.ContactPreferences) error
}
