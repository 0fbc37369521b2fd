// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/medpak/webster-service/config"
	"github.com/medpak/webster-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB connection and repositories)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize business services on top of the repositories
	serviceComponents := InitializeServices(cfg, dbComponents)

	// Initialize router components (health handler and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.HealthHandler, routerComponents.Config)
}
