// Package app provides router configuration.
package app

import (
	"github.com/medpak/webster-service/config"
	"github.com/medpak/webster-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes the health handler and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	// Register the database and its circuit breakers for health monitoring
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", dbComponents.DB)
		if dbComponents.PacksCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_packs", dbComponents.PacksCircuitBreaker)
		}
		if dbComponents.AuditCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_audit", dbComponents.AuditCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
	}

	if cfg.Auth.Enabled {
		routerCfg.JWTSecret = cfg.Auth.JWTSecretKey
	}

	if services != nil {
		routerCfg.AuditService = services.Audit
		routerCfg.Workflow = services.Workflow
		routerCfg.PackService = services.Packs
		routerCfg.CustomerService = services.Customers
		routerCfg.MedicationService = services.Medications
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
