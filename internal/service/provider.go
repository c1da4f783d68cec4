package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"bloom/internal/domain"
	"bloom/internal/repository"
)

// Радиус Земли в милях, сферическая модель без геодезических поправок
const earthRadiusMiles = 3959.0

type ProviderServiceImpl struct {
	repo   repository.ProviderRepository
	logger *zap.Logger
}

func NewProviderService(repo repository.ProviderRepository, logger *zap.Logger) *ProviderServiceImpl {
	return &ProviderServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *ProviderServiceImpl) Search(ctx context.Context, filters domain.SearchFilters, location *domain.Location) ([]domain.Provider, error) {
	if filters.MaxDistance != nil && *filters.MaxDistance < 0 {
		s.logger.Warn("отрицательный радиус поиска", zap.Float64("distance", *filters.MaxDistance))
		return nil, fmt.Errorf("%w: радиус поиска не может быть отрицательным", domain.ErrValidation)
	}

	providers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ошибка получения справочника провайдеров", zap.Error(err))
		return nil, err
	}

	results := make([]domain.Provider, 0, len(providers))
	nameTerm := strings.ToLower(strings.TrimSpace(filters.DoctorName))

	for _, provider := range providers {
		if filters.Country != nil && provider.Country != *filters.Country {
			continue
		}
		if filters.Specialty != nil && provider.Specialty != *filters.Specialty {
			continue
		}
		if nameTerm != "" && !strings.Contains(strings.ToLower(provider.Name), nameTerm) {
			continue
		}
		results = append(results, provider)
	}

	// Без местоположения дистанционная фильтрация и сортировка не выполняются,
	// результаты остаются в порядке справочника
	if location == nil {
		return results, nil
	}

	withDistance := make([]domain.Provider, 0, len(results))
	for _, provider := range results {
		d := haversineMiles(location.Latitude, location.Longitude, provider.Latitude, provider.Longitude)
		provider.Distance = &d

		if filters.MaxDistance != nil && *filters.MaxDistance > 0 && d > *filters.MaxDistance {
			continue
		}
		withDistance = append(withDistance, provider)
	}

	sort.SliceStable(withDistance, func(i, j int) bool {
		return *withDistance[i].Distance < *withDistance[j].Distance
	})

	return withDistance, nil
}

func (s *ProviderServiceImpl) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	provider, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("провайдер не найден", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return provider, nil
}

func (s *ProviderServiceImpl) GetCountries(ctx context.Context) ([]string, error) {
	providers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ошибка получения справочника провайдеров", zap.Error(err))
		return nil, err
	}

	return distinctSorted(providers, func(p domain.Provider) string { return p.Country }), nil
}

func (s *ProviderServiceImpl) GetSpecialties(ctx context.Context) ([]string, error) {
	providers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ошибка получения справочника провайдеров", zap.Error(err))
		return nil, err
	}

	return distinctSorted(providers, func(p domain.Provider) string { return p.Specialty }), nil
}

func (s *ProviderServiceImpl) GetAvailableTimeSlots(ctx context.Context, providerID, _ string) ([]string, error) {
	if _, err := s.repo.GetByID(ctx, providerID); err != nil {
		s.logger.Error("провайдер не найден при запросе слотов", zap.String("providerID", providerID), zap.Error(err))
		return nil, err
	}

	// Фиксированная сетка слотов, реальной проверки занятости нет
	return []string{
		"09:00 AM",
		"09:30 AM",
		"10:00 AM",
		"10:30 AM",
		"11:00 AM",
		"11:30 AM",
		"02:00 PM",
		"02:30 PM",
		"03:00 PM",
		"03:30 PM",
		"04:00 PM",
		"04:30 PM",
	}, nil
}

func (s *ProviderServiceImpl) GetVisitReasons(_ context.Context) ([]string, error) {
	return []string{
		"Annual Checkup",
		"Follow-up Visit",
		"New Symptoms",
		"Prescription Refill",
		"Consultation",
		"Emergency",
		"Second Opinion",
		"Other",
	}, nil
}

// haversineMiles считает расстояние по дуге большого круга в милях,
// округляя до одного знака после запятой
func haversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	distance := earthRadiusMiles * c

	return math.Round(distance*10) / 10
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

func distinctSorted(providers []domain.Provider, key func(domain.Provider) string) []string {
	seen := make(map[string]struct{}, len(providers))
	values := make([]string, 0, len(providers))

	for _, provider := range providers {
		v := key(provider)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	sort.Strings(values)
	return values
}
