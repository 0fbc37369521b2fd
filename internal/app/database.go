// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/medpak/webster-service/config"
	"github.com/medpak/webster-service/internal/circuitbreaker"
	"github.com/medpak/webster-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                  *repository.MongoDB
	PackRepo            repository.PackRepositoryInterface
	ChecklistRepo       repository.ChecklistRepositoryInterface
	CustomerRepo        repository.CustomerRepositoryInterface
	MedicationRepo      repository.MedicationRepositoryInterface
	AuditRepo           repository.AuditRepositoryInterface
	PacksCircuitBreaker *circuitbreaker.CircuitBreaker
	AuditCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates the
// repositories. Returns nil if the connection fails; the service then runs
// with only infrastructure routes so liveness probes keep passing.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	// Audit entries expire after the configured retention window
	ttlDays := int(cfg.AuditTTL.Hours() / 24)
	if err := db.SetAuditTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set audit TTL index (may already exist)")
	}

	// Pack reads and writes sit on the scanning hot path; audit writes are
	// best-effort. Each gets its own breaker so audit failures never trip
	// pack operations.
	packsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-packs",
	})

	auditCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-audit",
	})

	packRepo := repository.NewPackRepositoryWithCircuitBreaker(repository.NewPackRepository(db), packsCB)
	auditRepo := repository.NewAuditRepositoryWithCircuitBreaker(repository.NewAuditRepository(db), auditCB)

	return &DatabaseComponents{
		DB:                  db,
		PackRepo:            packRepo,
		ChecklistRepo:       repository.NewChecklistRepository(db),
		CustomerRepo:        repository.NewCustomerRepository(db),
		MedicationRepo:      repository.NewMedicationRepository(db),
		AuditRepo:           auditRepo,
		PacksCircuitBreaker: packsCB,
		AuditCircuitBreaker: auditCB,
	}
}
