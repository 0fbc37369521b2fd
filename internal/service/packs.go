package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medpak/webster-service/internal/domain/dto"
	"github.com/medpak/webster-service/internal/domain/model"
	"github.com/medpak/webster-service/internal/metrics"
	"github.com/medpak/webster-service/internal/repository"
)

// PackDetail aggregates everything the preparation screen needs for one
// pack: the pack with its customer joined, the medication line items in
// load order, and the checklist in creation order.
type PackDetail struct {
	Pack        model.WebsterPack      `json:"pack"`
	Medications []model.PackMedication `json:"medications"`
	Checklist   []model.ChecklistItem  `json:"checklist"`
}

// DashboardSummary holds pack counts grouped by status.
type DashboardSummary struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Completed  int64 `json:"completed"`
	Total      int64 `json:"total"`
}

// PackService manages webster packs and their child records.
type PackService interface {
	Create(ctx context.Context, req dto.CreatePackRequest, pharmacistID *primitive.ObjectID) (*model.WebsterPack, error)
	GetDetail(ctx context.Context, id primitive.ObjectID) (*PackDetail, error)
	List(ctx context.Context, opts repository.PackListOptions) ([]model.WebsterPack, error)
	Checklist(ctx context.Context, packID primitive.ObjectID) ([]model.ChecklistItem, error)
	Dashboard(ctx context.Context) (*DashboardSummary, error)
}

// PackServiceImpl implements PackService over the pack and checklist
// repositories.
type PackServiceImpl struct {
	packs     repository.PackRepositoryInterface
	checklist repository.ChecklistRepositoryInterface
	customers repository.CustomerRepositoryInterface
	audit     AuditService
}

// NewPackService creates the pack service. The audit service may be nil.
func NewPackService(packs repository.PackRepositoryInterface, checklist repository.ChecklistRepositoryInterface, customers repository.CustomerRepositoryInterface, audit AuditService) *PackServiceImpl {
	return &PackServiceImpl{packs: packs, checklist: checklist, customers: customers, audit: audit}
}

// Create opens a new pack for a customer with its medication line items and
// the standard preparation checklist. A pack created by an identified
// pharmacist starts in_progress; otherwise it waits in pending.
func (s *PackServiceImpl) Create(ctx context.Context, req dto.CreatePackRequest, pharmacistID *primitive.ObjectID) (*model.WebsterPack, error) {
	customerID, err := primitive.ObjectIDFromHex(req.CustomerID)
	if err != nil {
		return nil, &dto.ValidationError{Field: "customer_id", Message: "invalid id"}
	}

	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("loading customer: %w", err)
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	status := model.StatusPending
	if pharmacistID != nil {
		status = model.StatusInProgress
	}

	pack := &model.WebsterPack{
		CustomerID:   customerID,
		PharmacistID: pharmacistID,
		Status:       status,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}

	meds := make([]model.PackMedication, 0, len(req.Medications))
	for _, m := range req.Medications {
		medID, err := primitive.ObjectIDFromHex(m.MedicationID)
		if err != nil {
			return nil, &dto.ValidationError{Field: "medications.medication_id", Message: "invalid id"}
		}
		tod := model.TimeOfDay(m.TimeOfDay)
		if tod == "" {
			tod = model.TimeOfDayUnspecified
		}
		meds = append(meds, model.PackMedication{
			MedicationID:        medID,
			Dosage:              m.Dosage,
			Frequency:           m.Frequency,
			TimeOfDay:           tod,
			SpecialInstructions: m.SpecialInstructions,
		})
	}

	created, err := s.packs.Create(ctx, pack, meds, model.DefaultChecklistSteps)
	if err != nil {
		return nil, fmt.Errorf("creating pack: %w", err)
	}

	metrics.RecordPackTransition(string(status))
	if s.audit != nil {
		entry := &model.AuditEntry{
			Timestamp: time.Now(),
			Action:    model.ActionPackCreated,
			Message:   "Webster pack created",
			PackID:    created.ID.Hex(),
			Fields:    map[string]interface{}{"customer_id": customerID.Hex()},
		}
		if pharmacistID != nil {
			entry.PharmacistID = pharmacistID.Hex()
		}
		go func() {
			auditCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = s.audit.Record(auditCtx, entry)
		}()
	}

	created.Customer = customer
	return created, nil
}

// GetDetail fetches a pack with its customer, line items, and checklist. It
// fails with ErrPackNotFound when the id matches nothing.
func (s *PackServiceImpl) GetDetail(ctx context.Context, id primitive.ObjectID) (*PackDetail, error) {
	pack, err := s.packs.GetDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading pack: %w", err)
	}
	if pack == nil {
		return nil, ErrPackNotFound
	}

	meds, err := s.packs.ListMedications(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading line items: %w", err)
	}
	items, err := s.checklist.ListByPack(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading checklist: %w", err)
	}

	return &PackDetail{Pack: *pack, Medications: meds, Checklist: items}, nil
}

// List returns packs with customers joined, filtered by the options.
func (s *PackServiceImpl) List(ctx context.Context, opts repository.PackListOptions) ([]model.WebsterPack, error) {
	return s.packs.List(ctx, opts)
}

// Checklist returns a pack's checklist items in creation order. It fails
// with ErrPackNotFound when the pack does not exist.
func (s *PackServiceImpl) Checklist(ctx context.Context, packID primitive.ObjectID) ([]model.ChecklistItem, error) {
	pack, err := s.packs.GetByID(ctx, packID)
	if err != nil {
		return nil, fmt.Errorf("loading pack: %w", err)
	}
	if pack == nil {
		return nil, ErrPackNotFound
	}
	return s.checklist.ListByPack(ctx, packID)
}

// Dashboard returns pack counts grouped by status.
func (s *PackServiceImpl) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	counts, err := s.packs.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting packs: %w", err)
	}
	summary := &DashboardSummary{}
	for _, c := range counts {
		switch c.Status {
		case model.StatusPending:
			summary.Pending = c.Count
		case model.StatusInProgress:
			summary.InProgress = c.Count
		case model.StatusCompleted:
			summary.Completed = c.Count
		}
		summary.Total += c.Count
	}
	return summary, nil
}
