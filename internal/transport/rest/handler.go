package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bloom/config"
	"bloom/internal/service"
	"bloom/internal/transport/websocket"
)

type Handler struct {
	services      *service.Services
	logger        *zap.Logger
	config        *config.Config
	telehealthHub *websocket.TelehealthHub
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config, telehealthHub *websocket.TelehealthHub) *Handler {
	return &Handler{
		services:      services,
		logger:        logger,
		config:        config,
		telehealthHub: telehealthHub,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		providers := api.Group("/providers")
		{
			providers.GET("/", h.searchProviders)
			providers.GET("/countries", h.getCountries)
			providers.GET("/specialties", h.getSpecialties)
			providers.GET("/visit-reasons", h.getVisitReasons)
			providers.GET("/:id", h.getProviderByID)
			providers.GET("/:id/slots", h.getAvailableTimeSlots)
		}

		appointments := api.Group("/appointments")
		{
			appointments.POST("/", h.bookAppointment)
			appointments.GET("/upcoming", h.getUpcomingAppointments)
			appointments.GET("/past", h.getPastAppointments)
			appointments.GET("/confirmation/:number", h.getAppointmentByConfirmation)
			appointments.GET("/:id", h.getAppointmentByID)
			appointments.POST("/:id/cancel", h.cancelAppointment)
		}

		geocode := api.Group("/geocode")
		{
			geocode.GET("/search", h.searchAddress)
			geocode.GET("/reverse", h.reverseGeocode)
		}

		policies := api.Group("/policies")
		{
			policies.GET("/", h.getPolicies)
			policies.GET("/:id", h.getPolicyByID)
			policies.GET("/:id/documents", h.getPolicyDocuments)
			policies.POST("/:id/documents", h.uploadPolicyDocument)
			policies.GET("/:id/documents/url", h.getPolicyDocumentURL)
			policies.GET("/:id/illustrations", h.getIllustrationsByPolicy)
		}

		actions := api.Group("/actions")
		{
			actions.GET("/", h.getActions)
			actions.GET("/:id", h.getActionByID)
			actions.PATCH("/:id/status", h.updateActionStatus)
		}

		illustrations := api.Group("/illustrations")
		{
			illustrations.GET("/requests", h.getIllustrationRequests)
			illustrations.POST("/requests", h.createIllustrationRequest)
			illustrations.POST("/payout", h.illustratePayout)
			illustrations.POST("/coverage-needs", h.calculateCoverageNeeds)
			illustrations.GET("/:id", h.getIllustrationByID)
		}

		preferences := api.Group("/preferences")
		{
			preferences.GET("/contact", h.getContactPreferences)
			preferences.PUT("/contact", h.saveContactPreferences)
		}
	}

	router.GET("/ws/telehealth", h.telehealthHub.HandleConnection)
}
