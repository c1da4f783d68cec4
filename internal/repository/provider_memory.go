package repository

import (
	"context"

	"bloom/internal/domain"
)

type ProviderMemoryRepository struct {
	providers []domain.Provider
}

func NewProviderRepository() *ProviderMemoryRepository {
	return &ProviderMemoryRepository{providers: seedProviders()}
}

func (r *ProviderMemoryRepository) List(_ context.Context) ([]domain.Provider, error) {
	// Справочник неизменяемый, наружу отдается копия
	providers := make([]domain.Provider, len(r.providers))
	copy(providers, r.providers)
	return providers, nil
}

func (r *ProviderMemoryRepository) GetByID(_ context.Context, id string) (*domain.Provider, error) {
	for _, provider := range r.providers {
		if provider.ID == id {
			p := provider
			return &p, nil
		}
	}
	return nil, domain.ErrProviderNotFound
}

func rating(v float64) *float64 {
	return &v
}

func seedProviders() []domain.Provider {
	return []domain.Provider{
		{
			ID:           "p1",
			Name:         "Dr. Sarah Johnson",
			Specialty:    "General Practice",
			Address:      "123 Medical Center Dr",
			City:         "New York",
			State:        "NY",
			Zip:          "10001",
			Country:      "United States",
			Phone:        "+1 (212) 555-0100",
			Latitude:     40.7589,
			Longitude:    -73.9851,
			Telemedicine: true,
			Rating:       rating(4.8),
		},
		{
			ID:           "p2",
			Name:         "Dr. Michael Chen",
			Specialty:    "Cardiology",
			Address:      "456 Heart Health Ave",
			City:         "Los Angeles",
			State:        "CA",
			Zip:          "90001",
			Country:      "United States",
			Phone:        "+1 (323) 555-0200",
			Latitude:     34.0522,
			Longitude:    -118.2437,
			Telemedicine: true,
			Rating:       rating(4.9),
		},
		{
			ID:           "p3",
			Name:         "Dr. Emily Rodriguez",
			Specialty:    "Pediatrics",
			Address:      "789 Children's Way",
			City:         "Chicago",
			State:        "IL",
			Zip:          "60601",
			Country:      "United States",
			Phone:        "+1 (312) 555-0300",
			Latitude:     41.8781,
			Longitude:    -87.6298,
			Telemedicine: false,
			Rating:       rating(4.7),
		},
		{
			ID:           "p4",
			Name:         "Dr. James Wilson",
			Specialty:    "Orthopedics",
			Address:      "321 Bone & Joint Blvd",
			City:         "Houston",
			State:        "TX",
			Zip:          "77001",
			Country:      "United States",
			Phone:        "+1 (713) 555-0400",
			Latitude:     29.7604,
			Longitude:    -95.3698,
			Telemedicine: false,
			Rating:       rating(4.6),
		},
		{
			ID:           "p5",
			Name:         "Dr. Lisa Anderson",
			Specialty:    "Dermatology",
			Address:      "555 Skin Care Plaza",
			City:         "Miami",
			State:        "FL",
			Zip:          "33101",
			Country:      "United States",
			Phone:        "+1 (305) 555-0500",
			Latitude:     25.7617,
			Longitude:    -80.1918,
			Telemedicine: true,
			Rating:       rating(4.8),
		},
		{
			ID:           "p6",
			Name:         "Dr. Oliver Thompson",
			Specialty:    "General Practice",
			Address:      "10 Harley Street",
			City:         "London",
			State:        "England",
			Zip:          "W1G 9PF",
			Country:      "United Kingdom",
			Phone:        "+44 20 7123 4567",
			Latitude:     51.5074,
			Longitude:    -0.1278,
			Telemedicine: true,
			Rating:       rating(4.7),
		},
		{
			ID:           "p7",
			Name:         "Dr. Emma Davies",
			Specialty:    "Cardiology",
			Address:      "25 Queen Square",
			City:         "Bristol",
			State:        "England",
			Zip:          "BS1 4QS",
			Country:      "United Kingdom",
			Phone:        "+44 117 555 0100",
			Latitude:     51.4545,
			Longitude:    -2.5879,
			Telemedicine: true,
			Rating:       rating(4.9),
		},
		{
			ID:           "p8",
			Name:         "Dr. William MacLeod",
			Specialty:    "Orthopedics",
			Address:      "15 Royal Infirmary St",
			City:         "Edinburgh",
			State:        "Scotland",
			Zip:          "EH1 1YT",
			Country:      "United Kingdom",
			Phone:        "+44 131 555 0200",
			Latitude:     55.9533,
			Longitude:    -3.1883,
			Telemedicine: false,
			Rating:       rating(4.6),
		},
		{
			ID:           "p9",
			Name:         "Dr. Sophie Tremblay",
			Specialty:    "General Practice",
			Address:      "200 University Ave",
			City:         "Toronto",
			State:        "ON",
			Zip:          "M5H 3C6",
			Country:      "Canada",
			Phone:        "+1 (416) 555-0100",
			Latitude:     43.6532,
			Longitude:    -79.3832,
			Telemedicine: true,
			Rating:       rating(4.8),
		},
		{
			ID:           "p10",
			Name:         "Dr. David Kumar",
			Specialty:    "Pediatrics",
			Address:      "1050 West 8th Ave",
			City:         "Vancouver",
			State:        "BC",
			Zip:          "V6H 1C5",
			Country:      "Canada",
			Phone:        "+1 (604) 555-0200",
			Latitude:     49.2827,
			Longitude:    -123.1207,
			Telemedicine: true,
			Rating:       rating(4.7),
		},
		{
			ID:           "p11",
			Name:         "Dr. Rachel Foster",
			Specialty:    "Dermatology",
			Address:      "88 Macquarie Street",
			City:         "Sydney",
			State:        "NSW",
			Zip:          "2000",
			Country:      "Australia",
			Phone:        "+61 2 9123 4567",
			Latitude:     -33.8688,
			Longitude:    151.2093,
			Telemedicine: true,
			Rating:       rating(4.9),
		},
		{
			ID:           "p12",
			Name:         "Dr. Mark Patterson",
			Specialty:    "Cardiology",
			Address:      "123 Collins Street",
			City:         "Melbourne",
			State:        "VIC",
			Zip:          "3000",
			Country:      "Australia",
			Phone:        "+61 3 9555 0100",
			Latitude:     -37.8136,
			Longitude:    144.9631,
			Telemedicine: false,
			Rating:       rating(4.8),
		},
		{
			ID:           "p13",
			Name:         "Dr. Hans Müller",
			Specialty:    "Orthopedics",
			Address:      "Friedrichstraße 123",
			City:         "Berlin",
			State:        "Berlin",
			Zip:          "10117",
			Country:      "Germany",
			Phone:        "+49 30 1234 5678",
			Latitude:     52.5200,
			Longitude:    13.4050,
			Telemedicine: true,
			Rating:       rating(4.7),
		},
		{
			ID:           "p14",
			Name:         "Dr. Anna Schmidt",
			Specialty:    "General Practice",
			Address:      "Marienplatz 15",
			City:         "Munich",
			State:        "Bavaria",
			Zip:          "80331",
			Country:      "Germany",
			Phone:        "+49 89 5555 0100",
			Latitude:     48.1351,
			Longitude:    11.5820,
			Telemedicine: true,
			Rating:       rating(4.6),
		},
		{
			ID:           "p15",
			Name:         "Dr. Marie Dubois",
			Specialty:    "Pediatrics",
			Address:      "15 Avenue des Champs-Élysées",
			City:         "Paris",
			State:        "Île-de-France",
			Zip:          "75008",
			Country:      "France",
			Phone:        "+33 1 4567 8900",
			Latitude:     48.8566,
			Longitude:    2.3522,
			Telemedicine: true,
			Rating:       rating(4.9),
		},
		{
			ID:           "p16",
			Name:         "Dr. Priya Sharma",
			Specialty:    "General Practice",
			Address:      "Baner Road, Aundh-Baner Link Road",
			City:         "Pune",
			State:        "Maharashtra",
			Zip:          "411045",
			Country:      "India",
			Phone:        "+91 20 2567 8900",
			Latitude:     18.5596,
			Longitude:    73.7789,
			Telemedicine: true,
			Rating:       rating(4.8),
		},
		{
			ID:           "p17",
			Name:         "Dr. Rajesh Patel",
			Specialty:    "Cardiology",
			Address:      "Balewadi High Street, Near Baner",
			City:         "Pune",
			State:        "Maharashtra",
			Zip:          "411045",
			Country:      "India",
			Phone:        "+91 20 2567 8901",
			Latitude:     18.5642,
			Longitude:    73.7678,
			Telemedicine: true,
			Rating:       rating(4.7),
		},
	}
}
