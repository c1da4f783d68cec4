package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bloom/internal/domain"
)

// @Summary Поиск провайдеров
// @Description Фильтрует справочник провайдеров по стране, специальности и имени врача. При наличии координат или адреса добавляет дистанцию, отсекает по радиусу и сортирует по близости
// @Tags Провайдеры
// @Accept json
// @Produce json
// @Param country query string false "Страна (all — без фильтра)"
// @Param specialty query string false "Специальность (all — без фильтра)"
// @Param doctor_name query string false "Подстрока имени врача"
// @Param distance query number false "Радиус поиска в милях"
// @Param lat query number false "Широта"
// @Param lon query number false "Долгота"
// @Param address query string false "Адрес для геокодирования"
// @Success 200 {object} successResponseBody "Список провайдеров"
// @Failure 400 {object} errorResponseBody "Некорректные параметры"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /providers [get]
func (h *Handler) searchProviders(c *gin.Context) {
	filters := domain.SearchFilters{
		DoctorName: c.Query("doctor_name"),
	}

	// Сентинел "all" с фронтенда означает отсутствие фильтра
	if country := c.Query("country"); country != "" && country != "all" {
		filters.Country = &country
	}
	if specialty := c.Query("specialty"); specialty != "" && specialty != "all" {
		filters.Specialty = &specialty
	}

	if distanceStr := c.Query("distance"); distanceStr != "" {
		distance, err := strconv.ParseFloat(distanceStr, 64)
		if err != nil {
			badRequestResponse(c, "неверный формат радиуса")
			return
		}
		filters.MaxDistance = &distance
	}

	location, err := h.resolveLocation(c)
	if err != nil {
		badRequestResponse(c, "неверный формат координат")
		return
	}

	providers, err := h.services.Provider.Search(c.Request.Context(), filters, location)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			badRequestResponse(c, err.Error())
			return
		}
		h.logger.Error("ошибка поиска провайдеров", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, providers)
}

// resolveLocation собирает местоположение из координат запроса либо
// геокодирует адрес. Сбой геокодирования означает "без местоположения".
func (h *Handler) resolveLocation(c *gin.Context) (*domain.Location, error) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr != "" && lonStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return nil, err
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return nil, err
		}
		return &domain.Location{Latitude: lat, Longitude: lon}, nil
	}

	address := c.Query("address")
	if address == "" {
		return nil, nil
	}

	results, err := h.services.Geocoding.SearchAddress(c.Request.Context(), address)
	if err != nil || len(results) == 0 {
		h.logger.Warn("адрес не удалось геокодировать", zap.String("address", address))
		return nil, nil
	}

	return &domain.Location{
		Latitude:  results[0].Lat,
		Longitude: results[0].Lon,
		Address:   results[0].DisplayName,
	}, nil
}

// @Summary Получить провайдера по ID
// @Tags Провайдеры
// @Produce json
// @Param id path string true "ID провайдера"
// @Success 200 {object} domain.Provider "Данные провайдера"
// @Failure 404 {object} errorResponseBody "Провайдер не найден"
// @Router /providers/{id} [get]
func (h *Handler) getProviderByID(c *gin.Context) {
	provider, err := h.services.Provider.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		notFoundResponse(c, "провайдер не найден")
		return
	}

	successResponse(c, http.StatusOK, provider)
}

// @Summary Список стран справочника
// @Tags Провайдеры
// @Produce json
// @Success 200 {object} successResponseBody "Отсортированный список стран"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /providers/countries [get]
func (h *Handler) getCountries(c *gin.Context) {
	countries, err := h.services.Provider.GetCountries(c.Request.Context())
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, countries)
}

// @Summary Список специальностей справочника
// @Tags Провайдеры
// @Produce json
// @Success 200 {object} successResponseBody "Отсортированный список специальностей"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /providers/specialties [get]
func (h *Handler) getSpecialties(c *gin.Context) {
	specialties, err := h.services.Provider.GetSpecialties(c.Request.Context())
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, specialties)
}

// @Summary Доступные слоты времени
// @Tags Провайдеры
// @Produce json
// @Param id path string true "ID провайдера"
// @Param date query string false "Дата в формате 2006-01-02"
// @Success 200 {object} successResponseBody "Список слотов"
// @Failure 404 {object} errorResponseBody "Провайдер не найден"
// @Router /providers/{id}/slots [get]
func (h *Handler) getAvailableTimeSlots(c *gin.Context) {
	slots, err := h.services.Provider.GetAvailableTimeSlots(c.Request.Context(), c.Param("id"), c.Query("date"))
	if err != nil {
		notFoundResponse(c, "провайдер не найден")
		return
	}

	successResponse(c, http.StatusOK, slots)
}

// @Summary Причины визита
// @Tags Провайдеры
// @Produce json
// @Success 200 {object} successResponseBody "Список причин визита"
// @Router /providers/visit-reasons [get]
func (h *Handler) getVisitReasons(c *gin.Context) {
	reasons, err := h.services.Provider.GetVisitReasons(c.Request.Context())
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, reasons)
}
