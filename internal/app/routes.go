package app

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/finvent/paystream/internal/handlers"
)

func (a *App) RegisterRoutes(webhookHandler *handlers.WebhookHandler, adminHandler *handlers.AdminHandler, promRegistry *prometheus.Registry) {
	a.Router.POST("/webhooks/:provider", webhookHandler.Receive)

	admin := a.Router.Group("/admin/webhooks")
	{
		admin.GET("/dead-lettered", adminHandler.ListDeadLettered)
		admin.GET("/dead-lettered/count", adminHandler.CountDeadLettered)
		admin.POST("/:event_id/replay", adminHandler.Replay)
	}

	a.Router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))

	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
