package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bloom/internal/domain"
	"bloom/internal/repository"
)

func newProviderService(t *testing.T) *ProviderServiceImpl {
	t.Helper()
	return NewProviderService(repository.NewProviderRepository(), zap.NewNop())
}

// gridProviders лежат на одном меридиане, расстояния считаются точно:
// один градус широты это примерно 69.1 мили
func gridProviderService() *ProviderServiceImpl {
	repo := &stubProviderRepo{providers: []domain.Provider{
		{ID: "far", Name: "Dr. Carol Far", Country: "USA", Specialty: "Cardiology", Latitude: 41.0, Longitude: -73.0},
		{ID: "near", Name: "Dr. Alice Near", Country: "USA", Specialty: "Cardiology", Latitude: 40.0, Longitude: -73.0},
		{ID: "mid", Name: "Dr. Bob Mid", Country: "Canada", Specialty: "Dermatology", Latitude: 40.5, Longitude: -73.0},
	}}
	return NewProviderService(repo, zap.NewNop())
}

type stubProviderRepo struct {
	providers []domain.Provider
}

func (r *stubProviderRepo) List(_ context.Context) ([]domain.Provider, error) {
	return r.providers, nil
}

func (r *stubProviderRepo) GetByID(_ context.Context, id string) (*domain.Provider, error) {
	for _, p := range r.providers {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrProviderNotFound
}

func TestSearchWithoutLocationKeepsDirectoryOrder(t *testing.T) {
	svc := gridProviderService()

	results, err := svc.Search(context.Background(), domain.SearchFilters{}, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "far", results[0].ID)
	assert.Equal(t, "near", results[1].ID)
	assert.Equal(t, "mid", results[2].ID)
	for _, p := range results {
		assert.Nil(t, p.Distance)
	}
}

func TestSearchFiltersByCountryAndSpecialty(t *testing.T) {
	svc := gridProviderService()
	country := "USA"
	specialty := "Cardiology"

	results, err := svc.Search(context.Background(), domain.SearchFilters{
		Country:   &country,
		Specialty: &specialty,
	}, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, p := range results {
		assert.Equal(t, "USA", p.Country)
		assert.Equal(t, "Cardiology", p.Specialty)
	}
}

func TestSearchFiltersByNameSubstring(t *testing.T) {
	svc := gridProviderService()

	results, err := svc.Search(context.Background(), domain.SearchFilters{DoctorName: "alice"}, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "near", results[0].ID)
}

func TestSearchWithLocationSortsByDistance(t *testing.T) {
	svc := gridProviderService()
	location := &domain.Location{Latitude: 40.0, Longitude: -73.0}

	results, err := svc.Search(context.Background(), domain.SearchFilters{}, location)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "near", results[0].ID)
	assert.Equal(t, "mid", results[1].ID)
	assert.Equal(t, "far", results[2].ID)

	for i, p := range results {
		require.NotNil(t, p.Distance)
		if i > 0 {
			assert.GreaterOrEqual(t, *p.Distance, *results[i-1].Distance)
		}
	}

	assert.InDelta(t, 0.0, *results[0].Distance, 0.01)
	assert.InDelta(t, 34.5, *results[1].Distance, 0.2)
	assert.InDelta(t, 69.1, *results[2].Distance, 0.2)
}

func TestSearchRadiusExcludesDistantProviders(t *testing.T) {
	svc := gridProviderService()
	location := &domain.Location{Latitude: 40.0, Longitude: -73.0}
	radius := 50.0

	results, err := svc.Search(context.Background(), domain.SearchFilters{MaxDistance: &radius}, location)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, p := range results {
		require.NotNil(t, p.Distance)
		assert.LessOrEqual(t, *p.Distance, radius)
	}
}

func TestSearchZeroRadiusMeansNoConstraint(t *testing.T) {
	svc := gridProviderService()
	location := &domain.Location{Latitude: 40.0, Longitude: -73.0}
	radius := 0.0

	results, err := svc.Search(context.Background(), domain.SearchFilters{MaxDistance: &radius}, location)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearchNegativeRadiusRejected(t *testing.T) {
	svc := gridProviderService()
	radius := -5.0

	_, err := svc.Search(context.Background(), domain.SearchFilters{MaxDistance: &radius}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestSearchIsRepeatable(t *testing.T) {
	svc := gridProviderService()
	location := &domain.Location{Latitude: 40.0, Longitude: -73.0}

	first, err := svc.Search(context.Background(), domain.SearchFilters{}, location)
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), domain.SearchFilters{}, location)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, *first[i].Distance, *second[i].Distance)
	}
}

func TestSearchNearbyManhattanScenario(t *testing.T) {
	svc := newProviderService(t)
	location := &domain.Location{Latitude: 40.73, Longitude: -73.99}
	radius := 50.0

	results, err := svc.Search(context.Background(), domain.SearchFilters{MaxDistance: &radius}, location)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	var found *domain.Provider
	for i := range results {
		if results[i].ID == "p1" {
			found = &results[i]
		}
	}
	require.NotNil(t, found, "провайдер p1 в Мидтауне должен попадать в радиус 50 миль")
	require.NotNil(t, found.Distance)

	assert.Greater(t, *found.Distance, 0.0)
	assert.LessOrEqual(t, *found.Distance, radius)
	// Дистанция округлена до одного знака
	assert.Equal(t, *found.Distance, math.Round(*found.Distance*10)/10)

	// Ближайший провайдер стоит первым
	assert.Equal(t, "p1", results[0].ID)
}

func TestHaversineMiles(t *testing.T) {
	// Один градус широты вдоль меридиана
	assert.InDelta(t, 69.1, haversineMiles(40.0, -73.0, 41.0, -73.0), 0.2)

	// Нулевое расстояние до самой себя
	assert.Equal(t, 0.0, haversineMiles(40.7589, -73.9851, 40.7589, -73.9851))

	// Симметрия
	assert.Equal(t,
		haversineMiles(40.73, -73.99, 40.7589, -73.9851),
		haversineMiles(40.7589, -73.9851, 40.73, -73.99))
}

func TestGetCountriesDistinctSorted(t *testing.T) {
	svc := newProviderService(t)

	countries, err := svc.GetCountries(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, countries)

	seen := make(map[string]struct{})
	for i, c := range countries {
		_, dup := seen[c]
		assert.False(t, dup, "дубликат страны %q", c)
		seen[c] = struct{}{}
		if i > 0 {
			assert.LessOrEqual(t, countries[i-1], c)
		}
	}
}

func TestGetAvailableTimeSlots(t *testing.T) {
	svc := newProviderService(t)

	slots, err := svc.GetAvailableTimeSlots(context.Background(), "p1", "2026-09-01")
	require.NoError(t, err)
	assert.Len(t, slots, 12)
	assert.Equal(t, "09:00 AM", slots[0])
	assert.Equal(t, "04:30 PM", slots[len(slots)-1])
}

func TestGetAvailableTimeSlotsUnknownProvider(t *testing.T) {
	svc := newProviderService(t)

	_, err := svc.GetAvailableTimeSlots(context.Background(), "missing", "2026-09-01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProviderNotFound))
}

func TestGetVisitReasons(t *testing.T) {
	svc := newProviderService(t)

	reasons, err := svc.GetVisitReasons(context.Background())
	require.NoError(t, err)
	assert.Len(t, reasons, 8)
	assert.Contains(t, reasons, "Annual Checkup")
	assert.Contains(t, reasons, "Other")
}
