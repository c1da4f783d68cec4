package domain

type Provider struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Specialty    string   `json:"specialty"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Zip          string   `json:"zip"`
	Country      string   `json:"country"`
	Phone        string   `json:"phone"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Telemedicine bool     `json:"telemedicine"`
	Rating       *float64 `json:"rating,omitempty"`
	Image        string   `json:"image,omitempty"`

	// Distance is computed per search request and never persisted.
	Distance *float64 `json:"distance,omitempty"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

type SearchFilters struct {
	Country     *string  `json:"country"`
	Specialty   *string  `json:"specialty"`
	DoctorName  string   `json:"doctor_name"`
	MaxDistance *float64 `json:"distance"`
}

type GeocodingResult struct {
	Lat         float64          `json:"lat"`
	Lon         float64          `json:"lon"`
	DisplayName string           `json:"display_name"`
	Address     GeocodingAddress `json:"address"`
}

type GeocodingAddress struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}
