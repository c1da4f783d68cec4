package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bloom/internal/domain"
)

// @Summary Контактные предпочтения
// @Tags Предпочтения
// @Produce json
// @Success 200 {object} domain.ContactPreferences "Текущие предпочтения"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /preferences/contact [get]
func (h *Handler) getContactPreferences(c *gin.Context) {
	preferences, err := h.services.Preferences.Get(c.Request.Context())
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, preferences)
}

// @Summary Сохранить контактные предпочтения
// @Tags Предпочтения
// @Accept json
// @Produce json
// @Param input body domain.ContactPreferences true "Телефон, email и каналы связи"
// @Success 200 {object} messageResponseType "Предпочтения сохранены"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /preferences/contact [put]
func (h *Handler) saveContactPreferences(c *gin.Context) {
	var preferences domain.ContactPreferences
	if err := c.ShouldBindJSON(&preferences); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Preferences.Save(c.Request.Context(), preferences); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			badRequestResponse(c, err.Error())
			return
		}
		internalServerErrorResponse(c)
		return
	}

	messageResponse(c, http.StatusOK, "предпочтения сохранены")
}
