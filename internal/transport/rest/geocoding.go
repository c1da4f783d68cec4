package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Геокодирование адреса
// @Description Ищет координаты по текстовому адресу через Nominatim. Сбой геокодирования дает пустой список, не ошибку
// @Tags Геокодирование
// @Produce json
// @Param q query string true "Текст адреса"
// @Success 200 {object} successResponseBody "Найденные местоположения"
// @Router /geocode/search [get]
func (h *Handler) searchAddress(c *gin.Context) {
	results, err := h.services.Geocoding.SearchAddress(c.Request.Context(), c.Query("q"))
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, results)
}

// @Summary Обратное геокодирование
// @Description Возвращает отображаемый адрес по координатам. При сбое возвращает строку "lat, lon"
// @Tags Геокодирование
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Success 200 {object} successResponseBody "Отображаемый адрес"
// @Failure 400 {object} errorResponseBody "Неверный формат координат"
// @Router /geocode/reverse [get]
func (h *Handler) reverseGeocode(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		badRequestResponse(c, "неверный формат координат")
		return
	}

	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		badRequestResponse(c, "неверный формат координат")
		return
	}

	address, err := h.services.Geocoding.ReverseGeocode(c.Request.Context(), lat, lon)
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, gin.H{"display_name": address})
}
