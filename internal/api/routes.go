package api

import (
	"gym-manager/internal/config"
	"gym-manager/internal/services"
	"gym-manager/internal/store"

	"github.com/gin-gonic/gin"
)

var subscriptionService *services.SubscriptionService

// InitHandlers wires the handlers to the shared record store.
func InitHandlers(st *store.Store) {
	subscriptionService = services.NewSubscriptionService(st)
}

// SetupRoutes sets up all routes
func SetupRoutes(r *gin.Engine, st *store.Store) {
	InitHandlers(st)

	// API route group
	api := r.Group("/api")
	{
		// Subscription routes
		subscriptions := api.Group("/subscriptions")
		{
			subscriptions.GET("", ListSubscriptions)
			subscriptions.POST("", CreateSubscription)
			subscriptions.GET("/alerts", GetAlerts)
			subscriptions.GET("/export", ExportCSV)
		}

		// Plan catalog
		api.GET("/plans", GetPlans)

		// Statistics routes
		stats := api.Group("/stats")
		{
			stats.GET("", GetStats)
			stats.GET("/revenue", GetRevenueByMonth)
			stats.GET("/status-breakdown", GetStatusBreakdown)
		}
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": config.AppConfig.ServiceName,
		})
	})
}
