package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bloom/internal/domain"
)

// @Summary Список полисов
// @Tags Полисы
// @Produce json
// @Success 200 {object} successResponseBody "Список полисов"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /policies [get]
func (h *Handler) getPolicies(c *gin.Context) {
	policies, err := h.services.Policy.List(c.Request.Context())
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, policies)
}

// @Summary Получить полис по ID
// @Tags Полисы
// @Produce json
// @Param id path string true "ID полиса"
// @Success 200 {object} domain.Policy "Данные полиса"
// @Failure 404 {object} errorResponseBody "Полис не найден"
// @Router /policies/{id} [get]
func (h *Handler) getPolicyByID(c *gin.Context) {
	policy, err := h.services.Policy.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		notFoundResponse(c, "полис не найден")
		return
	}

	successResponse(c, http.StatusOK, policy)
}

// @Summary Документы полиса
// @Tags Полисы
// @Produce json
// @Param id path string true "ID полиса"
// @Success 200 {object} successResponseBody "Список документов"
// @Failure 404 {object} errorResponseBody "Полис не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /policies/{id}/documents [get]
func (h *Handler) getPolicyDocuments(c *gin.Context) {
	documents, err := h.services.Policy.ListDocuments(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPolicyNotFound) {
			notFoundResponse(c, "полис не найден")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, documents)
}

// @Summary Загрузить документ полиса
// @Tags Полисы
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID полиса"
// @Param file formData file true "Файл документа (PDF или изображение)"
// @Success 201 {object} successResponseBody "URL загруженного документа"
// @Failure 400 {object} errorResponseBody "Ошибка чтения файла"
// @Failure 404 {object} errorResponseBody "Полис не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /policies/{id}/documents [post]
func (h *Handler) uploadPolicyDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.logger.Warn("файл не получен", zap.Error(err))
		badRequestResponse(c, "файл не получен")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		badRequestResponse(c, "ошибка чтения файла")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		badRequestResponse(c, "ошибка чтения файла")
		return
	}

	url, err := h.services.Policy.UploadDocument(c.Request.Context(), c.Param("id"), data, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, domain.ErrPolicyNotFound) {
			notFoundResponse(c, "полис не найден")
			return
		}
		h.logger.Error("ошибка загрузки документа", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, gin.H{"url": url})
}

// @Summary Ссылка на скачивание документа
// @Tags Полисы
// @Produce json
// @Param id path string true "ID полиса"
// @Param url query string true "URL документа"
// @Success 200 {object} successResponseBody "Временная ссылка на скачивание"
// @Failure 404 {object} errorResponseBody "Полис не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /policies/{id}/documents/url [get]
func (h *Handler) getPolicyDocumentURL(c *gin.Context) {
	documentURL := c.Query("url")
	if documentURL == "" {
		badRequestResponse(c, "не указан URL документа")
		return
	}

	url, err := h.services.Policy.GetDocumentURL(c.Request.Context(), c.Param("id"), documentURL)
	if err != nil {
		if errors.Is(err, domain.ErrPolicyNotFound) {
			notFoundResponse(c, "полис не найден")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, gin.H{"url": url})
}

// @Summary Список обращений
// @Tags Обращения
// @Produce json
// @Success 200 {object} successResponseBody "Список обращений по полисам"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /actions [get]
func (h *Handler) getActions(c *gin.Context) {
	actions, err := h.services.Action.List(c.Request.Context())
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, actions)
}

// @Summary Получить обращение по ID
// @Tags Обращения
// @Produce json
// @Param id path string true "ID обращения"
// @Success 200 {object} domain.CustomerAction "Данные обращения"
// @Failure 404 {object} errorResponseBody "Обращение не найдено"
// @Router /actions/{id} [get]
func (h *Handler) getActionByID(c *gin.Context) {
	action, err := h.services.Action.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		notFoundResponse(c, "обращение не найдено")
		return
	}

	successResponse(c, http.StatusOK, action)
}

// @Summary Обновить статус обращения
// @Description Меняет статус и дописывает запись в историю жизненного цикла
// @Tags Обращения
// @Accept json
// @Produce json
// @Param id path string true "ID обращения"
// @Param input body domain.UpdateActionStatusDTO true "Новый статус и комментарий"
// @Success 200 {object} domain.CustomerAction "Обновленное обращение"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 404 {object} errorResponseBody "Обращение не найдено"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /actions/{id}/status [patch]
func (h *Handler) updateActionStatus(c *gin.Context) {
	var req domain.UpdateActionStatusDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	action, err := h.services.Action.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, domain.ErrActionNotFound) {
			notFoundResponse(c, "обращение не найдено")
			return
		}
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, action)
}
