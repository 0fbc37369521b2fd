// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medpak/webster-service/internal/circuitbreaker"
	"github.com/medpak/webster-service/internal/domain/model"
)

// PackRepositoryWithCircuitBreaker wraps PackRepository with circuit breaker
// protection. Workflow calls fail fast instead of piling up on a sick mongod.
type PackRepositoryWithCircuitBreaker struct {
	repo           *PackRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPackRepositoryWithCircuitBreaker creates a new wrapper.
func NewPackRepositoryWithCircuitBreaker(repo *PackRepository, cb *circuitbreaker.CircuitBreaker) *PackRepositoryWithCircuitBreaker {
	return &PackRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create inserts a pack with its children, with circuit breaker protection.
func (r *PackRepositoryWithCircuitBreaker) Create(ctx context.Context, pack *model.WebsterPack, meds []model.PackMedication, steps []string) (*model.WebsterPack, error) {
	var result *model.WebsterPack
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, pack, meds, steps)
		return cbErr
	})
	return result, err
}

// GetByID fetches a pack with circuit breaker protection.
func (r *PackRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id primitive.ObjectID) (*model.WebsterPack, error) {
	var result *model.WebsterPack
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// GetDetail fetches a joined pack with circuit breaker protection.
func (r *PackRepositoryWithCircuitBreaker) GetDetail(ctx context.Context, id primitive.ObjectID) (*model.WebsterPack, error) {
	var result *model.WebsterPack
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetDetail(ctx, id)
		return cbErr
	})
	return result, err
}

// List lists packs with circuit breaker protection.
func (r *PackRepositoryWithCircuitBreaker) List(ctx context.Context, opts PackListOptions) ([]model.WebsterPack, error) {
	var result []model.WebsterPack
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, opts)
		return cbErr
	})
	return result, err
}

// ListMedications lists line items with circuit breaker protection.
func (r *PackRepositoryWithCircuitBreaker) ListMedications(ctx context.Context, packID primitive.ObjectID) ([]model.PackMedication, error) {
	var result []model.PackMedication
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListMedications(ctx, packID)
		return cbErr
	})
	return result, err
}

// CompleteStatusCAS performs the conditional status write with circuit
// breaker protection.
func (r *PackRepositoryWithCircuitBreaker) CompleteStatusCAS(ctx context.Context, packID primitive.ObjectID) (bool, error) {
	var transitioned bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		transitioned, cbErr = r.repo.CompleteStatusCAS(ctx, packID)
		return cbErr
	})
	return transitioned, err
}

// CountByStatus aggregates pack counts with circuit breaker protection.
func (r *PackRepositoryWithCircuitBreaker) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	var result []model.StatusCount
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.CountByStatus(ctx)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying breaker for health monitoring.
func (r *PackRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// AuditRepositoryWithCircuitBreaker wraps AuditRepository. Audit writes are
// non-critical: when the circuit is open they are dropped silently rather
// than failing the workflow action they describe.
type AuditRepositoryWithCircuitBreaker struct {
	repo           *AuditRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewAuditRepositoryWithCircuitBreaker creates a new wrapper.
func NewAuditRepositoryWithCircuitBreaker(repo *AuditRepository, cb *circuitbreaker.CircuitBreaker) *AuditRepositoryWithCircuitBreaker {
	return &AuditRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create stores one audit entry, dropping it when the circuit is open.
func (r *AuditRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.AuditEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores audit entries in bulk, dropping them when the circuit is
// open.
func (r *AuditRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.AuditEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query reads audit entries with circuit breaker protection.
func (r *AuditRepositoryWithCircuitBreaker) Query(ctx context.Context, q model.AuditQuery) ([]model.AuditEntry, error) {
	var result []model.AuditEntry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, q)
		return cbErr
	})
	return result, err
}

// Count counts audit entries with circuit breaker protection.
func (r *AuditRepositoryWithCircuitBreaker) Count(ctx context.Context, q model.AuditQuery) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, q)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying breaker for health monitoring.
func (r *AuditRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
