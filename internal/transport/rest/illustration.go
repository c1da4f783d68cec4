package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bloom/internal/domain"
)

// @Summary Получить иллюстрацию по ID
// @Tags Иллюстрации
// @Produce json
// @Param id path string true "ID иллюстрации"
// @Success 200 {object} domain.Illustration "Данные иллюстрации"
// @Failure 404 {object} errorResponseBody "Иллюстрация не найдена"
// @Router /illustrations/{id} [get]
func (h *Handler) getIllustrationByID(c *gin.Context) {
	illustration, err := h.services.Illustration.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		notFoundResponse(c, "иллюстрация не найдена")
		return
	}

	successResponse(c, http.StatusOK, illustration)
}

// @Summary Иллюстрации по полису
// @Tags Иллюстрации
// @Produce json
// @Param id path string true "ID полиса"
// @Success 200 {object} successResponseBody "Список иллюстраций"
// @Failure 404 {object} errorResponseBody "Полис не найден"
// @Router /policies/{id}/illustrations [get]
func (h *Handler) getIllustrationsByPolicy(c *gin.Context) {
	illustrations, err := h.services.Illustration.GetByPolicy(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPolicyNotFound) {
			notFoundResponse(c, "полис не найден")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, illustrations)
}

// @Summary Список запросов на иллюстрации
// @Tags Иллюстрации
// @Produce json
// @Param policy_id query string false "Фильтр по ID полиса"
// @Success 200 {object} successResponseBody "Список запросов"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /illustrations/requests [get]
func (h *Handler) getIllustrationRequests(c *gin.Context) {
	var policyID *string
	if v := c.Query("policy_id"); v != "" {
		policyID = &v
	}

	requests, err := h.services.Illustration.ListRequests(c.Request.Context(), policyID)
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, requests)
}

// @Summary Создать запрос на иллюстрацию
// @Tags Иллюстрации
// @Accept json
// @Produce json
// @Param input body domain.CreateIllustrationRequestDTO true "Параметры запроса"
// @Success 201 {object} domain.IllustrationRequest "Созданный запрос"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 404 {object} errorResponseBody "Полис не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /illustrations/requests [post]
func (h *Handler) createIllustrationRequest(c *gin.Context) {
	var req domain.CreateIllustrationRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	request, err := h.services.Illustration.CreateRequest(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrPolicyNotFound) {
			notFoundResponse(c, "полис не найден")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			badRequestResponse(c, err.Error())
			return
		}
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, request)
}

// @Summary Расчет выплаты по аннуитету
// @Description Рассчитывает чистую сумму займа или снятия с проекцией стоимости полиса
// @Tags Иллюстрации
// @Accept json
// @Produce json
// @Param input body domain.PayoutIllustrationInput true "Параметры выплаты"
// @Success 200 {object} domain.PayoutIllustration "Расчет выплаты"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /illustrations/payout [post]
func (h *Handler) illustratePayout(c *gin.Context) {
	var input domain.PayoutIllustrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	result, err := h.services.Illustration.IllustratePayout(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			badRequestResponse(c, err.Error())
			return
		}
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, result)
}

// @Summary Расчет потребности в покрытии
// @Description Оценивает необходимую страховую сумму по доходу, долгам и расходам
// @Tags Иллюстрации
// @Accept json
// @Produce json
// @Param input body domain.CoverageNeedsInput true "Финансовые данные"
// @Success 200 {object} domain.CoverageNeeds "Результат расчета"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /illustrations/coverage-needs [post]
func (h *Handler) calculateCoverageNeeds(c *gin.Context) {
	var input domain.CoverageNeedsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	result, err := h.services.Illustration.CalculateCoverageNeeds(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			badRequestResponse(c, err.Error())
			return
		}
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, result)
}
