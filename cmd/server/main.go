package main

import (
	"log"

	"gym-manager/internal/api"
	"gym-manager/internal/config"
	"gym-manager/internal/store"
	"gym-manager/pkg/logging"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatal("Failed to initialize config:", err)
	}

	// Initialize logging
	logging.InitLogging()

	// Open the record store; fail early on an unreadable data file
	st := store.NewStore(config.AppConfig.DataPath)
	records, err := st.Load()
	if err != nil {
		log.Fatal("Failed to read subscriptions file:", err)
	}
	logging.Infof("Loaded %d subscription records from %s", len(records), config.AppConfig.DataPath)

	// Set Gin mode
	gin.SetMode(config.AppConfig.Mode)

	// Create Gin engine
	r := gin.Default()

	// Setup routes
	api.SetupRoutes(r, st)

	// Start server
	port := config.AppConfig.Port
	logging.Infof("Starting server on port %s", port)

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
