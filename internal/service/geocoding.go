package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"bloom/config"
	"bloom/internal/domain"
)

// GeocodingServiceImpl обращается к Nominatim. Любой сбой (сеть, разбор
// ответа) деградирует до пустого результата: для вызывающей стороны это
// означает "местоположение недоступно", а не ошибку.
type GeocodingServiceImpl struct {
	cfg    config.GeocodingConfig
	client *http.Client
	logger *zap.Logger
}

func NewGeocodingService(cfg config.GeocodingConfig, logger *zap.Logger) *GeocodingServiceImpl {
	return &GeocodingServiceImpl{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
}

func (s *GeocodingServiceImpl) SearchAddress(ctx context.Context, query string) ([]domain.GeocodingResult, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.GeocodingResult{}, nil
	}

	endpoint := fmt.Sprintf("%s/search?format=json&q=%s&addressdetails=1&limit=5",
		s.cfg.BaseURL, url.QueryEscape(query))

	var items []nominatimResult
	if err := s.get(ctx, endpoint, &items); err != nil {
		s.logger.Warn("ошибка геокодирования адреса", zap.String("query", query), zap.Error(err))
		return []domain.GeocodingResult{}, nil
	}

	results := make([]domain.GeocodingResult, 0, len(items))
	for _, item := range items {
		lat, latErr := strconv.ParseFloat(item.Lat, 64)
		lon, lonErr := strconv.ParseFloat(item.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}

		results = append(results, domain.GeocodingResult{
			Lat:         lat,
			Lon:         lon,
			DisplayName: item.DisplayName,
			Address: domain.GeocodingAddress{
				City:    item.Address.City,
				State:   item.Address.State,
				Country: item.Address.Country,
			},
		})
	}

	return results, nil
}

func (s *GeocodingServiceImpl) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%s&lon=%s",
		s.cfg.BaseURL,
		strconv.FormatFloat(latitude, 'f', -1, 64),
		strconv.FormatFloat(longitude, 'f', -1, 64))

	var item nominatimResult
	if err := s.get(ctx, endpoint, &item); err != nil {
		s.logger.Warn("ошибка обратного геокодирования",
			zap.Float64("lat", latitude),
			zap.Float64("lon", longitude),
			zap.Error(err))
		return fmt.Sprintf("%v, %v", latitude, longitude), nil
	}

	if item.DisplayName == "" {
		return fmt.Sprintf("%v, %v", latitude, longitude), nil
	}

	return item.DisplayName, nil
}

func (s *GeocodingServiceImpl) get(ctx context.Context, endpoint string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("неожиданный статус ответа: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("ошибка разбора ответа: %w", err)
	}

	return nil
}
