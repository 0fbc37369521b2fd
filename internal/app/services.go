// Package app provides service initialization.
package app

import (
	"github.com/medpak/webster-service/config"
	"github.com/medpak/webster-service/internal/service"
	"github.com/medpak/webster-service/internal/service/cache"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Workflow     service.Workflow
	Packs        service.PackService
	Customers    service.CustomerService
	Medications  service.MedicationService
	Audit        service.AuditService
	BarcodeCache cache.Cache
}

// InitializeServices initializes business logic services on top of the
// database components. Returns nil when the database is unavailable.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	if db == nil {
		return nil
	}

	var barcodeCache cache.Cache
	if cfg.Cache.Size > 0 {
		barcodeCache = cache.NewTTLCache(cfg.Cache.Size, cfg.Cache.TTL)
	}

	auditService := service.NewAuditService(db.AuditRepo)

	return &ServiceComponents{
		Workflow:     service.NewWorkflowService(db.PackRepo, db.ChecklistRepo, service.WithAudit(auditService)),
		Packs:        service.NewPackService(db.PackRepo, db.ChecklistRepo, db.CustomerRepo, auditService),
		Customers:    service.NewCustomerService(db.CustomerRepo),
		Medications:  service.NewMedicationService(db.MedicationRepo, barcodeCache),
		Audit:        auditService,
		BarcodeCache: barcodeCache,
	}
}
