// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medpak/webster-service/internal/domain/dto"
	"github.com/medpak/webster-service/internal/domain/model"
	"github.com/medpak/webster-service/internal/repository"
	"github.com/medpak/webster-service/internal/service"
	"github.com/medpak/webster-service/internal/service/cache"
)

type MockWorkflow struct {
	mock.Mock
}

func (m *MockWorkflow) CompleteStep(ctx context.Context, packID, stepID, pharmacistID primitive.ObjectID, notes string) (*service.CompletionResult, error) {
	args := m.Called(ctx, packID, stepID, pharmacistID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CompletionResult), args.Error(1)
}

func (m *MockWorkflow) VerifyByBarcode(ctx context.Context, packID primitive.ObjectID, barcode string, pharmacistID primitive.ObjectID) (*service.VerificationResult, error) {
	args := m.Called(ctx, packID, barcode, pharmacistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VerificationResult), args.Error(1)
}

func (m *MockWorkflow) Reevaluate(ctx context.Context, packID primitive.ObjectID) (service.TransitionOutcome, error) {
	args := m.Called(ctx, packID)
	return args.Get(0).(service.TransitionOutcome), args.Error(1)
}

type MockPackService struct {
	mock.Mock
}

func (m *MockPackService) Create(ctx context.Context, req dto.CreatePackRequest, pharmacistID *primitive.ObjectID) (*model.WebsterPack, error) {
	args := m.Called(ctx, req, pharmacistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WebsterPack), args.Error(1)
}

func (m *MockPackService) GetDetail(ctx context.Context, id primitive.ObjectID) (*service.PackDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PackDetail), args.Error(1)
}

func (m *MockPackService) List(ctx context.Context, opts repository.PackListOptions) ([]model.WebsterPack, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WebsterPack), args.Error(1)
}

func (m *MockPackService) Checklist(ctx context.Context, packID primitive.ObjectID) ([]model.ChecklistItem, error) {
	args := m.Called(ctx, packID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChecklistItem), args.Error(1)
}

func (m *MockPackService) Dashboard(ctx context.Context) (*service.DashboardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DashboardSummary), args.Error(1)
}

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (*model.Customer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerService) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerService) List(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

func (m *MockCustomerService) Search(ctx context.Context, term string) ([]model.Customer, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

type MockMedicationService struct {
	mock.Mock
}

func (m *MockMedicationService) Create(ctx context.Context, req dto.CreateMedicationRequest) (*model.Medication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medication), args.Error(1)
}

func (m *MockMedicationService) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Medication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medication), args.Error(1)
}

func (m *MockMedicationService) GetByBarcode(ctx context.Context, barcode string) (*model.Medication, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medication), args.Error(1)
}

func (m *MockMedicationService) List(ctx context.Context, limit int) ([]model.Medication, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Medication), args.Error(1)
}

func (m *MockMedicationService) CacheStats() cache.Metrics {
	args := m.Called()
	return args.Get(0).(cache.Metrics)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, entry *model.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditService) RecordBatch(ctx context.Context, entries []*model.AuditEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockAuditService) Query(ctx context.Context, q model.AuditQuery) ([]model.AuditEntry, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AuditEntry), args.Error(1)
}

func (m *MockAuditService) Count(ctx context.Context, q model.AuditQuery) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}
