package http

import (
	"github.com/gin-gonic/gin"

	"github.com/medpak/webster-service/internal/service"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// PackRoutes wires pack CRUD, the dashboard, and the preparation workflow.
type PackRoutes struct {
	packs    *PacksHandler
	workflow *WorkflowHandler
}

// NewPackRoutes creates a new PackRoutes instance.
func NewPackRoutes(packService service.PackService, workflow service.Workflow) *PackRoutes {
	return &PackRoutes{
		packs:    NewPacksHandler(packService),
		workflow: NewWorkflowHandler(workflow),
	}
}

// RegisterRoutes registers pack and workflow routes.
func (r *PackRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.POST("/packs", r.packs.Create)
	rg.GET("/packs", r.packs.List)
	rg.GET("/packs/:id", r.packs.Get)
	rg.GET("/packs/:id/checklist", r.packs.Checklist)
	rg.POST("/packs/:id/steps/:stepID/complete", r.workflow.CompleteStep)
	rg.POST("/packs/:id/scan", r.workflow.Scan)
	rg.GET("/dashboard/summary", r.packs.Dashboard)
}

// CustomerRoutes wires the customer register.
type CustomerRoutes struct {
	handler *CustomersHandler
}

// NewCustomerRoutes creates a new CustomerRoutes instance.
func NewCustomerRoutes(customers service.CustomerService) *CustomerRoutes {
	return &CustomerRoutes{handler: NewCustomersHandler(customers)}
}

// RegisterRoutes registers customer routes.
func (r *CustomerRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.POST("/customers", r.handler.Create)
	rg.GET("/customers", r.handler.List)
	rg.GET("/customers/search", r.handler.Search)
	rg.GET("/customers/:id", r.handler.Get)
}

// MedicationRoutes wires the medication catalog.
type MedicationRoutes struct {
	handler *MedicationsHandler
}

// NewMedicationRoutes creates a new MedicationRoutes instance.
func NewMedicationRoutes(medications service.MedicationService) *MedicationRoutes {
	return &MedicationRoutes{handler: NewMedicationsHandler(medications)}
}

// RegisterRoutes registers medication routes.
func (r *MedicationRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.POST("/medications", r.handler.Create)
	rg.GET("/medications", r.handler.List)
	rg.GET("/medications/barcode/:code", r.handler.GetByBarcode)
	rg.GET("/medications/:id", r.handler.Get)
}

// AuditRoutes wires the audit trail query endpoint.
type AuditRoutes struct {
	handler *AuditHandler
}

// NewAuditRoutes creates a new AuditRoutes instance.
func NewAuditRoutes(audit service.AuditService) *AuditRoutes {
	return &AuditRoutes{handler: NewAuditHandler(audit)}
}

// RegisterRoutes registers audit routes.
func (r *AuditRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/audit", r.handler.Query)
}
