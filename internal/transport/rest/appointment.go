package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bloom/internal/domain"
)

// @Summary Записаться на приём
// @Description Создает подтвержденную запись к провайдеру и возвращает номер подтверждения
// @Tags Записи
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Данные для записи на приём"
// @Success 201 {object} domain.Appointment "Созданная запись"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 404 {object} errorResponseBody "Провайдер не найден"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /appointments [post]
func (h *Handler) bookAppointment(c *gin.Context) {
	var req domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	appointment, err := h.services.Appointment.Book(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrProviderNotFound) {
			notFoundResponse(c, "провайдер не найден")
			return
		}
		h.logger.Error("ошибка создания записи на приём", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	createdResponse(c, appointment)
}

// @Summary Отменить запись
// @Description Переводит запись в терминальный статус cancelled. Повторная отмена идемпотентна
// @Tags Записи
// @Produce json
// @Param id path string true "ID записи"
// @Success 200 {object} messageResponseType "Сообщение об успешной отмене"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /appointments/{id}/cancel [post]
func (h *Handler) cancelAppointment(c *gin.Context) {
	err := h.services.Appointment.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			notFoundResponse(c, "запись не найдена")
			return
		}
		h.logger.Error("ошибка отмены записи", zap.Error(err))
		internalServerErrorResponse(c)
		return
	}

	messageResponse(c, http.StatusOK, "запись отменена")
}

// @Summary Получить запись по ID
// @Tags Записи
// @Produce json
// @Param id path string true "ID записи"
// @Success 200 {object} domain.Appointment "Данные записи"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		notFoundResponse(c, "запись не найдена")
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Получить запись по номеру подтверждения
// @Tags Записи
// @Produce json
// @Param number path string true "Номер подтверждения"
// @Success 200 {object} domain.Appointment "Данные записи"
// @Failure 404 {object} errorResponseBody "Запись не найдена"
// @Router /appointments/confirmation/{number} [get]
func (h *Handler) getAppointmentByConfirmation(c *gin.Context) {
	appointment, err := h.services.Appointment.GetByConfirmation(c.Request.Context(), c.Param("number"))
	if err != nil {
		notFoundResponse(c, "запись не найдена")
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Предстоящие записи
// @Description Неотмененные записи с датой сегодня или позже, по возрастанию даты
// @Tags Записи
// @Produce json
// @Success 200 {object} successResponseBody "Список записей"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /appointments/upcoming [get]
func (h *Handler) getUpcomingAppointments(c *gin.Context) {
	appointments, err := h.services.Appointment.GetUpcoming(c.Request.Context())
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, appointments)
}

// @Summary Прошедшие записи
// @Description Все записи, включая отмененные, с датой раньше сегодняшней, по убыванию даты
// @Tags Записи
// @Produce json
// @Success 200 {object} successResponseBody "Список записей"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /appointments/past [get]
func (h *Handler) getPastAppointments(c *gin.Context) {
	appointments, err := h.services.Appointment.GetPast(c.Request.Context())
	if err != nil {
		internalServerErrorResponse(c)
		return
	}

	successResponse(c, http.StatusOK, appointments)
}
