package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Каталог пунктов помощи: чтение открыто, мутации под API-ключом
	points := api.Group("/relief-points")
	{
		points.GET("", h.listReliefPoints)
		points.GET("/nearby", h.nearbyReliefPoints)
		points.GET("/:id", h.getReliefPoint)

		protected := points.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
		{
			protected.POST("", h.createReliefPoint)
			protected.PATCH("/:id", h.updateReliefPoint)
			protected.DELETE("/:id", h.deleteReliefPoint)
		}
	}

	// Сессионный слой
	users := api.Group("/users")
	{
		users.POST("", h.signIn)
		users.PUT("/:id/location", h.refreshLocation)
	}

	// Рекомендации: текущий пользователь берется из заголовка X-User-ID
	recommendations := api.Group("/recommendations", UserContextMiddleware())
	{
		recommendations.POST("/generate", h.generateRecommendations)
		recommendations.POST("/feedback", h.provideFeedback)
		recommendations.POST("/:id/dismiss", h.dismissRecommendation)
	}

	// Уведомления
	notifications := api.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/unread-count", h.unreadCount)
		notifications.POST("", APIKeyAuthMiddleware(h.cfg, h.logger), h.pushNotification)
		notifications.POST("/:id/read", h.markNotificationRead)
	}

	// Статистика под API-ключом
	api.GET("/stats", APIKeyAuthMiddleware(h.cfg, h.logger), h.getStats)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
