// Package repository provides interfaces for repository operations.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medpak/webster-service/internal/domain/model"
)

// CustomerRepositoryInterface defines customer data access.
type CustomerRepositoryInterface interface {
	Create(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Search(ctx context.Context, term string, limit int) ([]model.Customer, error)
}

// MedicationRepositoryInterface defines medication catalog access.
type MedicationRepositoryInterface interface {
	Create(ctx context.Context, med *model.Medication) (*model.Medication, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Medication, error)
	GetByBarcode(ctx context.Context, barcode string) (*model.Medication, error)
	List(ctx context.Context, limit int) ([]model.Medication, error)
}

// PackRepositoryInterface defines webster pack data access.
//
// CompleteStatusCAS is the conditional write the status derivation relies on:
// it sets status=completed only when the stored status is not yet completed,
// and reports whether this call performed the transition. Two racing
// derivations therefore cannot both observe a transition.
type PackRepositoryInterface interface {
	Create(ctx context.Context, pack *model.WebsterPack, meds []model.PackMedication, steps []string) (*model.WebsterPack, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.WebsterPack, error)
	GetDetail(ctx context.Context, id primitive.ObjectID) (*model.WebsterPack, error)
	List(ctx context.Context, opts PackListOptions) ([]model.WebsterPack, error)
	ListMedications(ctx context.Context, packID primitive.ObjectID) ([]model.PackMedication, error)
	CompleteStatusCAS(ctx context.Context, packID primitive.ObjectID) (bool, error)
	CountByStatus(ctx context.Context) ([]model.StatusCount, error)
}

// ChecklistRepositoryInterface defines checklist item data access.
type ChecklistRepositoryInterface interface {
	ListByPack(ctx context.Context, packID primitive.ObjectID) ([]model.ChecklistItem, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.ChecklistItem, error)
	MarkCompleted(ctx context.Context, itemID, packID, pharmacistID primitive.ObjectID, completedAt time.Time, notes string) (*model.ChecklistItem, error)
}

// AuditRepositoryInterface defines audit trail access.
type AuditRepositoryInterface interface {
	Create(ctx context.Context, entry *model.AuditEntry) error
	CreateMany(ctx context.Context, entries []*model.AuditEntry) error
	Query(ctx context.Context, q model.AuditQuery) ([]model.AuditEntry, error)
	Count(ctx context.Context, q model.AuditQuery) (int64, error)
}

// PackListOptions filters pack listings. Zero values mean "any".
type PackListOptions struct {
	Status     model.PackStatus
	CustomerID *primitive.ObjectID
	Limit      int
}
