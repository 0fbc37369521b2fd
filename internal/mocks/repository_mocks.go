// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medpak/webster-service/internal/domain/model"
	"github.com/medpak/webster-service/internal/repository"
)

type MockCustomerRepositoryInterface struct {
	mock.Mock
}

func (m *MockCustomerRepositoryInterface) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepositoryInterface) List(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

func (m *MockCustomerRepositoryInterface) Search(ctx context.Context, term string, limit int) ([]model.Customer, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

type MockMedicationRepositoryInterface struct {
	mock.Mock
}

func (m *MockMedicationRepositoryInterface) Create(ctx context.Context, med *model.Medication) (*model.Medication, error) {
	args := m.Called(ctx, med)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medication), args.Error(1)
}

func (m *MockMedicationRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Medication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medication), args.Error(1)
}

func (m *MockMedicationRepositoryInterface) GetByBarcode(ctx context.Context, barcode string) (*model.Medication, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Medication), args.Error(1)
}

func (m *MockMedicationRepositoryInterface) List(ctx context.Context, limit int) ([]model.Medication, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Medication), args.Error(1)
}

type MockPackRepositoryInterface struct {
	mock.Mock
}

func (m *MockPackRepositoryInterface) Create(ctx context.Context, pack *model.WebsterPack, meds []model.PackMedication, steps []string) (*model.WebsterPack, error) {
	args := m.Called(ctx, pack, meds, steps)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WebsterPack), args.Error(1)
}

func (m *MockPackRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*model.WebsterPack, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WebsterPack), args.Error(1)
}

func (m *MockPackRepositoryInterface) GetDetail(ctx context.Context, id primitive.ObjectID) (*model.WebsterPack, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WebsterPack), args.Error(1)
}

func (m *MockPackRepositoryInterface) List(ctx context.Context, opts repository.PackListOptions) ([]model.WebsterPack, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WebsterPack), args.Error(1)
}

func (m *MockPackRepositoryInterface) ListMedications(ctx context.Context, packID primitive.ObjectID) ([]model.PackMedication, error) {
	args := m.Called(ctx, packID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PackMedication), args.Error(1)
}

func (m *MockPackRepositoryInterface) CompleteStatusCAS(ctx context.Context, packID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, packID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPackRepositoryInterface) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StatusCount), args.Error(1)
}

type MockChecklistRepositoryInterface struct {
	mock.Mock
}

func (m *MockChecklistRepositoryInterface) ListByPack(ctx context.Context, packID primitive.ObjectID) ([]model.ChecklistItem, error) {
	args := m.Called(ctx, packID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChecklistItem), args.Error(1)
}

func (m *MockChecklistRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*model.ChecklistItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChecklistItem), args.Error(1)
}

func (m *MockChecklistRepositoryInterface) MarkCompleted(ctx context.Context, itemID, packID, pharmacistID primitive.ObjectID, completedAt time.Time, notes string) (*model.ChecklistItem, error) {
	args := m.Called(ctx, itemID, packID, pharmacistID, completedAt, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChecklistItem), args.Error(1)
}

type MockAuditRepositoryInterface struct {
	mock.Mock
}

func (m *MockAuditRepositoryInterface) Create(ctx context.Context, entry *model.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepositoryInterface) CreateMany(ctx context.Context, entries []*model.AuditEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockAuditRepositoryInterface) Query(ctx context.Context, q model.AuditQuery) ([]model.AuditEntry, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AuditEntry), args.Error(1)
}

func (m *MockAuditRepositoryInterface) Count(ctx context.Context, q model.AuditQuery) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}
