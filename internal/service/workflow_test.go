package service_test

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medpak/webster-service/internal/domain/model"
	"github.com/medpak/webster-service/internal/mocks"
	"github.com/medpak/webster-service/internal/repository"
	"github.com/medpak/webster-service/internal/service"
)

func checklistFixture(packID primitive.ObjectID, completed ...bool) []model.ChecklistItem {
	names := model.DefaultChecklistSteps
	items := make([]model.ChecklistItem, 0, len(completed))
	for i, done := range completed {
		item := model.ChecklistItem{
			ID:        primitive.NewObjectID(),
			PackID:    packID,
			StepName:  names[i%len(names)],
			Completed: done,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Millisecond),
		}
		if done {
			now := time.Now()
			item.CompletedAt = &now
		}
		items = append(items, item)
	}
	return items
}

func packFixture(status model.PackStatus) *model.WebsterPack {
	return &model.WebsterPack{
		ID:         primitive.NewObjectID(),
		CustomerID: primitive.NewObjectID(),
		Status:     status,
		StartDate:  time.Now(),
		EndDate:    time.Now().AddDate(0, 0, 7),
		CreatedAt:  time.Now(),
	}
}

func TestWorkflowService_CompleteStep(t *testing.T) {
	pharmacistID := primitive.NewObjectID()

	tests := []struct {
		name               string
		setupMocks         func(packID, stepID primitive.ObjectID, packs *mocks.MockPackRepositoryInterface, checklist *mocks.MockChecklistRepositoryInterface)
		expectedError      error
		expectedTransition service.TransitionOutcome
	}{
		{
			name: "completes a step without finishing the pack",
			setupMocks: func(packID, stepID primitive.ObjectID, packs *mocks.MockPackRepositoryInterface, checklist *mocks.MockChecklistRepositoryInterface) {
				packs.On("GetByID", mock.Anything, packID).Return(packFixture(model.StatusInProgress), nil)
				completed := &model.ChecklistItem{ID: stepID, PackID: packID, StepName: "Load Blister Pack", Completed: true}
				checklist.On("MarkCompleted", mock.Anything, stepID, packID, pharmacistID, mock.Anything, "").
					Return(completed, nil)
				checklist.On("ListByPack", mock.Anything, packID).
					Return(checklistFixture(packID, true, false, false, false), nil)
			},
			expectedTransition: service.NoTransition,
		},
		{
			name: "last step completion transitions the pack",
			setupMocks: func(packID, stepID primitive.ObjectID, packs *mocks.MockPackRepositoryInterface, checklist *mocks.MockChecklistRepositoryInterface) {
				packs.On("GetByID", mock.Anything, packID).Return(packFixture(model.StatusInProgress), nil)
				completed := &model.ChecklistItem{ID: stepID, PackID: packID, StepName: "Final Check", Completed: true}
				checklist.On("MarkCompleted", mock.Anything, stepID, packID, pharmacistID, mock.Anything, "").
					Return(completed, nil)
				checklist.On("ListByPack", mock.Anything, packID).
					Return(checklistFixture(packID, true, true, true, true), nil)
				packs.On("CompleteStatusCAS", mock.Anything, packID).Return(true, nil)
			},
			expectedTransition: service.TransitionedToCompleted,
		},
		{
			name: "completed pack rejects further completions",
			setupMocks: func(packID, stepID primitive.ObjectID, packs *mocks.MockPackRepositoryInterface, checklist *mocks.MockChecklistRepositoryInterface) {
				packs.On("GetByID", mock.Anything, packID).Return(packFixture(model.StatusCompleted), nil)
			},
			expectedError: service.ErrPackAlreadyCompleted,
		},
		{
			name: "missing pack",
			setupMocks: func(packID, stepID primitive.ObjectID, packs *mocks.MockPackRepositoryInterface, checklist *mocks.MockChecklistRepositoryInterface) {
				packs.On("GetByID", mock.Anything, packID).Return(nil, nil)
			},
			expectedError: service.ErrPackNotFound,
		},
		{
			name: "step belonging to another pack",
			setupMocks: func(packID, stepID primitive.ObjectID, packs *mocks.MockPackRepositoryInterface, checklist *mocks.MockChecklistRepositoryInterface) {
				packs.On("GetByID", mock.Anything, packID).Return(packFixture(model.StatusInProgress), nil)
				checklist.On("MarkCompleted", mock.Anything, stepID, packID, pharmacistID, mock.Anything, "").
					Return(nil, nil)
			},
			expectedError: service.ErrStepNotFound,
		},
		{
			name: "concurrent derivation already transitioned",
			setupMocks: func(packID, stepID primitive.ObjectID, packs *mocks.MockPackRepositoryInterface, checklist *mocks.MockChecklistRepositoryInterface) {
				packs.On("GetByID", mock.Anything, packID).Return(packFixture(model.StatusInProgress), nil)
				completed := &model.ChecklistItem{ID: stepID, PackID: packID, StepName: "Final Check", Completed: true}
				checklist.On("MarkCompleted", mock.Anything, stepID, packID, pharmacistID, mock.Anything, "").
					Return(completed, nil)
				checklist.On("ListByPack", mock.Anything, packID).
					Return(checklistFixture(packID, true, true, true, true), nil)
				packs.On("CompleteStatusCAS", mock.Anything, packID).Return(false, nil)
			},
			expectedTransition: service.NoTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packID := primitive.NewObjectID()
			stepID := primitive.NewObjectID()
			mockPacks := new(mocks.MockPackRepositoryInterface)
			mockChecklist := new(mocks.MockChecklistRepositoryInterface)
			tt.setupMocks(packID, stepID, mockPacks, mockChecklist)

			wf := service.NewWorkflowService(mockPacks, mockChecklist)
			result, err := wf.CompleteStep(context.Background(), packID, stepID, pharmacistID, "")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.True(t, result.Item.Completed)
				assert.Equal(t, tt.expectedTransition, result.Transition)
			}

			mockPacks.AssertExpectations(t)
			mockChecklist.AssertExpectations(t)
		})
	}
}

func TestWorkflowService_CompleteStep_FailedGuardMutatesNothing(t *testing.T) {
	packID := primitive.NewObjectID()
	mockPacks := new(mocks.MockPackRepositoryInterface)
	mockChecklist := new(mocks.MockChecklistRepositoryInterface)
	mockPacks.On("GetByID", mock.Anything, packID).Return(packFixture(model.StatusCompleted), nil)

	wf := service.NewWorkflowService(mockPacks, mockChecklist)
	_, err := wf.CompleteStep(context.Background(), packID, primitive.NewObjectID(), primitive.NewObjectID(), "")

	assert.ErrorIs(t, err, service.ErrPackAlreadyCompleted)
	mockChecklist.AssertNotCalled(t, "MarkCompleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockPacks.AssertNotCalled(t, "CompleteStatusCAS", mock.Anything, mock.Anything)
}

func TestWorkflowService_StatusWriteRetry(t *testing.T) {
	packID := primitive.NewObjectID()
	stepID := primitive.NewObjectID()
	pharmacistID := primitive.NewObjectID()

	mockPacks := new(mocks.MockPackRepositoryInterface)
	mockChecklist := new(mocks.MockChecklistRepositoryInterface)
	mockPacks.On("GetByID", mock.Anything, packID).Return(packFixture(model.StatusInProgress), nil)
	completed := &model.ChecklistItem{ID: stepID, PackID: packID, StepName: "Final Check", Completed: true}
	mockChecklist.On("MarkCompleted", mock.Anything, stepID, packID, pharmacistID, mock.Anything, "").
		Return(completed, nil)
	mockChecklist.On("ListByPack", mock.Anything, packID).
		Return(checklistFixture(packID, true, true, true, true), nil)
	mockPacks.On("CompleteStatusCAS", mock.Anything, packID).Return(false, errors.New("transient")).Twice()
	mockPacks.On("CompleteStatusCAS", mock.Anything, packID).Return(true, nil).Once()

	wf := service.NewWorkflowService(mockPacks, mockChecklist, service.WithStatusWriteRetry(3, 0))
	result, err := wf.CompleteStep(context.Background(), packID, stepID, pharmacistID, "")

	assert.NoError(t, err)
	assert.Equal(t, service.TransitionedToCompleted, result.Transition)
	mockPacks.AssertExpectations(t)
}

func TestWorkflowService_StatusWriteRetryExhausted(t *testing.T) {
	packID := primitive.NewObjectID()
	stepID := primitive.NewObjectID()
	pharmacistID := primitive.NewObjectID()

	mockPacks := new(mocks.MockPackRepositoryInterface)
	mockChecklist := new(mocks.MockChecklistRepositoryInterface)
	mockPacks.On("GetByID", mock.Anything, packID).Return(packFixture(model.StatusInProgress), nil)
	completed := &model.ChecklistItem{ID: stepID, PackID: packID, StepName: "Final Check", Completed: true}
	mockChecklist.On("MarkCompleted", mock.Anything, stepID, packID, pharmacistID, mock.Anything, "").
		Return(completed, nil)
	mockChecklist.On("ListByPack", mock.Anything, packID).
		Return(checklistFixture(packID, true, true, true, true), nil)
	mockPacks.On("CompleteStatusCAS", mock.Anything, packID).Return(false, errors.New("write failed")).Times(3)

	wf := service.NewWorkflowService(mockPacks, mockChecklist, service.WithStatusWriteRetry(3, 0))
	result, err := wf.CompleteStep(context.Background(), packID, stepID, pharmacistID, "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "write failed")
	assert.Nil(t, result)
	mockPacks.AssertExpectations(t)
}

func TestWorkflowService_Reevaluate(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(packID primitive.ObjectID, packs *mocks.MockPackRepositoryInterface, checklist *mocks.MockChecklistRepositoryInterface)
		expected   service.TransitionOutcome
		casCalled  bool
	}{
		{
			name: "open steps remain",
			setupMocks: func(packID primitive.ObjectID, packs *mocks.MockPackRepositoryInterface, checklist *mocks.MockChecklistRepositoryInterface) {
				checklist.On("ListByPack", mock.Anything, packID).
					Return(checklistFixture(packID, true, true, false, true), nil)
			},
			expected: service.NoTransition,
		},
		{
			name: "empty checklist never completes",
			setupMocks: func(packID primitive.ObjectID, packs *mocks.MockPackRepositoryInterface, checklist *mocks.MockChecklistRepositoryInterface) {
				checklist.On("ListByPack", mock.Anything, packID).
					Return([]model.ChecklistItem{}, nil)
			},
			expected: service.NoTransition,
		},
		{
			name: "all steps complete transitions once",
			setupMocks: func(packID primitive.ObjectID, packs *mocks.MockPackRepositoryInterface, checklist *mocks.MockChecklistRepositoryInterface) {
				checklist.On("ListByPack", mock.Anything, packID).
					Return(checklistFixture(packID, true, true, true, true), nil)
				packs.On("CompleteStatusCAS", mock.Anything, packID).Return(true, nil)
			},
			expected:  service.TransitionedToCompleted,
			casCalled: true,
		},
		{
			name: "repeat derivation is a no-op",
			setupMocks: func(packID primitive.ObjectID, packs *mocks.MockPackRepositoryInterface, checklist *mocks.MockChecklistRepositoryInterface) {
				checklist.On("ListByPack", mock.Anything, packID).
					Return(checklistFixture(packID, true, true, true, true), nil)
				packs.On("CompleteStatusCAS", mock.Anything, packID).Return(false, nil)
			},
			expected:  service.NoTransition,
			casCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packID := primitive.NewObjectID()
			mockPacks := new(mocks.MockPackRepositoryInterface)
			mockChecklist := new(mocks.MockChecklistRepositoryInterface)
			tt.setupMocks(packID, mockPacks, mockChecklist)

			wf := service.NewWorkflowService(mockPacks, mockChecklist)
			outcome, err := wf.Reevaluate(context.Background(), packID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, outcome)
			if !tt.casCalled {
				mockPacks.AssertNotCalled(t, "CompleteStatusCAS", mock.Anything, mock.Anything)
			}
			mockPacks.AssertExpectations(t)
			mockChecklist.AssertExpectations(t)
		})
	}
}

func medsFixture(packID primitive.ObjectID, barcodes ...string) []model.PackMedication {
	meds := make([]model.PackMedication, 0, len(barcodes))
	for i, code := range barcodes {
		meds = append(meds, model.PackMedication{
			ID:           primitive.NewObjectID(),
			PackID:       packID,
			MedicationID: primitive.NewObjectID(),
			Dosage:       "1 tablet",
			Frequency:    "daily",
			TimeOfDay:    model.TimeOfDayMorning,
			CreatedAt:    time.Now().Add(time.Duration(i) * time.Millisecond),
			Medication: &model.Medication{
				ID:        primitive.NewObjectID(),
				BrandName: "Med",
				Strength:  "10mg",
				Form:      "tablet",
				Barcode:   code,
			},
		})
	}
	return meds
}

func TestWorkflowService_VerifyByBarcode(t *testing.T) {
	pharmacistID := primitive.NewObjectID()

	t.Run("match auto-completes the verification step", func(t *testing.T) {
		packID := primitive.NewObjectID()
		mockPacks := new(mocks.MockPackRepositoryInterface)
		mockChecklist := new(mocks.MockChecklistRepositoryInterface)

		mockPacks.On("GetByID", mock.Anything, packID).Return(packFixture(model.StatusInProgress), nil)
		mockPacks.On("ListMedications", mock.Anything, packID).
			Return(medsFixture(packID, "9312345678907", "9300000000001"), nil)

		verifyStep := model.ChecklistItem{
			ID:       primitive.NewObjectID(),
			PackID:   packID,
			StepName: model.VerifyMedicationsStep,
		}
		others := checklistFixture(packID, false, false, false)
		items := append([]model.ChecklistItem{verifyStep}, others...)
		mockChecklist.On("ListByPack", mock.Anything, packID).Return(items, nil)

		completed := verifyStep
		completed.Completed = true
		mockChecklist.On("MarkCompleted", mock.Anything, verifyStep.ID, packID, pharmacistID, mock.Anything, "").
			Return(&completed, nil)

		wf := service.NewWorkflowService(mockPacks, mockChecklist)
		result, err := wf.VerifyByBarcode(context.Background(), packID, "9300000000001", pharmacistID)

		assert.NoError(t, err)
		assert.Equal(t, service.Verified, result.Outcome)
		assert.NotNil(t, result.LineItem)
		assert.Equal(t, "9300000000001", result.LineItem.Medication.Barcode)
		assert.NotNil(t, result.StepCompletion)
		assert.Equal(t, model.VerifyMedicationsStep, result.StepCompletion.Item.StepName)
		mockChecklist.AssertExpectations(t)
	})

	t.Run("unmatched barcode is a warning outcome, not an error", func(t *testing.T) {
		packID := primitive.NewObjectID()
		mockPacks := new(mocks.MockPackRepositoryInterface)
		mockChecklist := new(mocks.MockChecklistRepositoryInterface)

		mockPacks.On("GetByID", mock.Anything, packID).Return(packFixture(model.StatusInProgress), nil)
		mockPacks.On("ListMedications", mock.Anything, packID).
			Return(medsFixture(packID, "9312345678907"), nil)

		wf := service.NewWorkflowService(mockPacks, mockChecklist)
		result, err := wf.VerifyByBarcode(context.Background(), packID, "0000000000000", pharmacistID)

		assert.NoError(t, err)
		assert.Equal(t, service.NotFound, result.Outcome)
		assert.Equal(t, "0000000000000", result.Barcode)
		assert.Nil(t, result.LineItem)
		mockChecklist.AssertNotCalled(t, "MarkCompleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("matching is case sensitive", func(t *testing.T) {
		packID := primitive.NewObjectID()
		mockPacks := new(mocks.MockPackRepositoryInterface)
		mockChecklist := new(mocks.MockChecklistRepositoryInterface)

		mockPacks.On("GetByID", mock.Anything, packID).Return(packFixture(model.StatusInProgress), nil)
		mockPacks.On("ListMedications", mock.Anything, packID).
			Return(medsFixture(packID, "ABC123"), nil)

		wf := service.NewWorkflowService(mockPacks, mockChecklist)
		result, err := wf.VerifyByBarcode(context.Background(), packID, "abc123", pharmacistID)

		assert.NoError(t, err)
		assert.Equal(t, service.NotFound, result.Outcome)
	})

	t.Run("duplicate barcodes resolve to the first line item in load order", func(t *testing.T) {
		packID := primitive.NewObjectID()
		mockPacks := new(mocks.MockPackRepositoryInterface)
		mockChecklist := new(mocks.MockChecklistRepositoryInterface)

		meds := medsFixture(packID, "9312345678907", "9312345678907")
		mockPacks.On("GetByID", mock.Anything, packID).Return(packFixture(model.StatusCompleted), nil)
		mockPacks.On("ListMedications", mock.Anything, packID).Return(meds, nil)

		wf := service.NewWorkflowService(mockPacks, mockChecklist)
		result, err := wf.VerifyByBarcode(context.Background(), packID, "9312345678907", pharmacistID)

		assert.NoError(t, err)
		assert.Equal(t, service.Verified, result.Outcome)
		assert.Equal(t, meds[0].ID, result.LineItem.ID)
	})

	t.Run("verification step already complete leaves checklist untouched", func(t *testing.T) {
		packID := primitive.NewObjectID()
		mockPacks := new(mocks.MockPackRepositoryInterface)
		mockChecklist := new(mocks.MockChecklistRepositoryInterface)

		mockPacks.On("GetByID", mock.Anything, packID).Return(packFixture(model.StatusInProgress), nil)
		mockPacks.On("ListMedications", mock.Anything, packID).
			Return(medsFixture(packID, "9312345678907"), nil)

		verifyStep := model.ChecklistItem{
			ID:        primitive.NewObjectID(),
			PackID:    packID,
			StepName:  model.VerifyMedicationsStep,
			Completed: true,
		}
		mockChecklist.On("ListByPack", mock.Anything, packID).
			Return([]model.ChecklistItem{verifyStep}, nil)

		wf := service.NewWorkflowService(mockPacks, mockChecklist)
		result, err := wf.VerifyByBarcode(context.Background(), packID, "9312345678907", pharmacistID)

		assert.NoError(t, err)
		assert.Equal(t, service.Verified, result.Outcome)
		assert.Nil(t, result.StepCompletion)
		mockChecklist.AssertNotCalled(t, "MarkCompleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("completed pack still verifies without touching the checklist", func(t *testing.T) {
		packID := primitive.NewObjectID()
		mockPacks := new(mocks.MockPackRepositoryInterface)
		mockChecklist := new(mocks.MockChecklistRepositoryInterface)

		mockPacks.On("GetByID", mock.Anything, packID).Return(packFixture(model.StatusCompleted), nil)
		mockPacks.On("ListMedications", mock.Anything, packID).
			Return(medsFixture(packID, "9312345678907"), nil)

		wf := service.NewWorkflowService(mockPacks, mockChecklist)
		result, err := wf.VerifyByBarcode(context.Background(), packID, "9312345678907", pharmacistID)

		assert.NoError(t, err)
		assert.Equal(t, service.Verified, result.Outcome)
		mockChecklist.AssertNotCalled(t, "ListByPack", mock.Anything, mock.Anything)
	})

	t.Run("missing pack", func(t *testing.T) {
		packID := primitive.NewObjectID()
		mockPacks := new(mocks.MockPackRepositoryInterface)
		mockChecklist := new(mocks.MockChecklistRepositoryInterface)
		mockPacks.On("GetByID", mock.Anything, packID).Return(nil, nil)

		wf := service.NewWorkflowService(mockPacks, mockChecklist)
		result, err := wf.VerifyByBarcode(context.Background(), packID, "9312345678907", pharmacistID)

		assert.ErrorIs(t, err, service.ErrPackNotFound)
		assert.Nil(t, result)
	})
}

// fakePackStore is an in-memory pack and checklist store with the same
// conditional-write semantics as the repositories, used to exercise the
// workflow under real goroutine interleavings.
type fakePackStore struct {
	mu          sync.Mutex
	pack        model.WebsterPack
	items       []model.ChecklistItem
	meds        []model.PackMedication
	transitions int
}

func (f *fakePackStore) Create(ctx context.Context, pack *model.WebsterPack, meds []model.PackMedication, steps []string) (*model.WebsterPack, error) {
	return nil, errors.New("not implemented")
}

func (f *fakePackStore) GetByID(ctx context.Context, id primitive.ObjectID) (*model.WebsterPack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != f.pack.ID {
		return nil, nil
	}
	out := f.pack
	return &out, nil
}

func (f *fakePackStore) GetDetail(ctx context.Context, id primitive.ObjectID) (*model.WebsterPack, error) {
	return f.GetByID(ctx, id)
}

func (f *fakePackStore) List(ctx context.Context, opts repository.PackListOptions) ([]model.WebsterPack, error) {
	return nil, errors.New("not implemented")
}

func (f *fakePackStore) ListMedications(ctx context.Context, packID primitive.ObjectID) ([]model.PackMedication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.PackMedication, len(f.meds))
	copy(out, f.meds)
	return out, nil
}

func (f *fakePackStore) CompleteStatusCAS(ctx context.Context, packID primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pack.Status == model.StatusCompleted {
		return false, nil
	}
	f.pack.Status = model.StatusCompleted
	f.transitions++
	return true, nil
}

func (f *fakePackStore) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	return nil, errors.New("not implemented")
}

func (f *fakePackStore) ListByPack(ctx context.Context, packID primitive.ObjectID) ([]model.ChecklistItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.ChecklistItem, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakePackStore) GetItemByID(ctx context.Context, id primitive.ObjectID) (*model.ChecklistItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			out := f.items[i]
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakePackStore) MarkCompleted(ctx context.Context, itemID, packID, pharmacistID primitive.ObjectID, completedAt time.Time, notes string) (*model.ChecklistItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == itemID && f.items[i].PackID == packID {
			f.items[i].Completed = true
			f.items[i].CompletedAt = &completedAt
			f.items[i].PharmacistID = &pharmacistID
			f.items[i].Notes = notes
			out := f.items[i]
			return &out, nil
		}
	}
	return nil, nil
}

type fakeChecklistStore struct {
	*fakePackStore
}

func (f fakeChecklistStore) GetByID(ctx context.Context, id primitive.ObjectID) (*model.ChecklistItem, error) {
	return f.GetItemByID(ctx, id)
}

// Completing steps in any order must converge on the same final state: every
// step completed and the pack transitioned exactly once.
func TestWorkflowService_ConcurrentCompletions(t *testing.T) {
	packID := primitive.NewObjectID()
	pharmacistID := primitive.NewObjectID()

	store := &fakePackStore{
		pack:  model.WebsterPack{ID: packID, Status: model.StatusInProgress},
		items: checklistFixture(packID, false, false, false, false),
	}

	stepIDs := make([]primitive.ObjectID, len(store.items))
	for i := range store.items {
		stepIDs[i] = store.items[i].ID
	}

	wf := service.NewWorkflowService(store, fakeChecklistStore{store})

	var wg sync.WaitGroup
	results := make([]*service.CompletionResult, len(stepIDs))
	for i := range stepIDs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := wf.CompleteStep(context.Background(), packID, stepIDs[i], pharmacistID, "")
			assert.NoError(t, err)
			results[i] = result
		}(i)
	}
	wg.Wait()

	transitioned := 0
	for _, r := range results {
		if r != nil && r.Transition == service.TransitionedToCompleted {
			transitioned++
		}
	}
	assert.Equal(t, 1, transitioned)
	assert.Equal(t, 1, store.transitions)
	assert.Equal(t, model.StatusCompleted, store.pack.Status)
	for _, item := range store.items {
		assert.True(t, item.Completed)
	}
}

// The completion invariant must hold after every step regardless of the
// order steps are completed in: the pack is completed exactly when every
// checklist item is.
func TestWorkflowService_CompletionOrderInvariant(t *testing.T) {
	pharmacistID := primitive.NewObjectID()

	for seed := int64(0); seed < 10; seed++ {
		packID := primitive.NewObjectID()
		store := &fakePackStore{
			pack:  model.WebsterPack{ID: packID, Status: model.StatusInProgress},
			items: checklistFixture(packID, false, false, false, false, false),
		}
		wf := service.NewWorkflowService(store, fakeChecklistStore{store})

		order := rand.New(rand.NewSource(seed)).Perm(len(store.items))
		for n, idx := range order {
			result, err := wf.CompleteStep(context.Background(), packID, store.items[idx].ID, pharmacistID, "")
			assert.NoError(t, err)
			assert.NotNil(t, result)

			allDone := true
			for _, item := range store.items {
				if !item.Completed {
					allDone = false
				}
			}
			completed := store.pack.Status == model.StatusCompleted
			assert.Equal(t, allDone, completed, "seed %d after %d steps", seed, n+1)
		}
		assert.Equal(t, 1, store.transitions, "seed %d", seed)

		// Every order ends in the terminal state, where further
		// completions are rejected without mutation.
		_, err := wf.CompleteStep(context.Background(), packID, store.items[0].ID, pharmacistID, "")
		assert.ErrorIs(t, err, service.ErrPackAlreadyCompleted)
	}
}

// Full packing session against the in-memory store: an unmatched scan leaves
// everything untouched, a matching scan completes the verification step, the
// remaining steps complete the pack exactly once, and the terminal state
// rejects further work.
func TestWorkflowService_PackingSession(t *testing.T) {
	packID := primitive.NewObjectID()
	pharmacistID := primitive.NewObjectID()

	items := []model.ChecklistItem{
		{ID: primitive.NewObjectID(), PackID: packID, StepName: "Load Blister Pack"},
		{ID: primitive.NewObjectID(), PackID: packID, StepName: model.VerifyMedicationsStep},
		{ID: primitive.NewObjectID(), PackID: packID, StepName: "Final Check"},
	}
	store := &fakePackStore{
		pack:  model.WebsterPack{ID: packID, Status: model.StatusInProgress},
		items: items,
		meds:  medsFixture(packID, "9312345678907", "9300607071702"),
	}
	wf := service.NewWorkflowService(store, fakeChecklistStore{store})
	ctx := context.Background()

	// Unknown barcode: a warning outcome with zero mutations.
	result, err := wf.VerifyByBarcode(ctx, packID, "X123", pharmacistID)
	assert.NoError(t, err)
	assert.Equal(t, service.NotFound, result.Outcome)
	assert.Equal(t, "X123", result.Barcode)
	for _, item := range store.items {
		assert.False(t, item.Completed)
	}
	assert.Equal(t, model.StatusInProgress, store.pack.Status)

	// A matching scan verifies the line item and auto-completes the
	// verification step; two steps remain open so the pack stays in progress.
	result, err = wf.VerifyByBarcode(ctx, packID, "9312345678907", pharmacistID)
	assert.NoError(t, err)
	assert.Equal(t, service.Verified, result.Outcome)
	assert.NotNil(t, result.LineItem)
	assert.NotNil(t, result.StepCompletion)
	assert.Equal(t, service.NoTransition, result.StepCompletion.Transition)
	assert.True(t, store.items[1].Completed)
	assert.Equal(t, model.StatusInProgress, store.pack.Status)

	// Completing the remaining steps transitions the pack exactly once.
	first, err := wf.CompleteStep(ctx, packID, store.items[0].ID, pharmacistID, "")
	assert.NoError(t, err)
	assert.Equal(t, service.NoTransition, first.Transition)

	last, err := wf.CompleteStep(ctx, packID, store.items[2].ID, pharmacistID, "")
	assert.NoError(t, err)
	assert.Equal(t, service.TransitionedToCompleted, last.Transition)
	assert.Equal(t, model.StatusCompleted, store.pack.Status)
	assert.Equal(t, 1, store.transitions)

	// Terminal guard: no further completions on any step.
	_, err = wf.CompleteStep(ctx, packID, store.items[0].ID, pharmacistID, "")
	assert.ErrorIs(t, err, service.ErrPackAlreadyCompleted)

	// Re-deriving without new mutations is a no-op.
	outcome, err := wf.Reevaluate(ctx, packID)
	assert.NoError(t, err)
	assert.Equal(t, service.NoTransition, outcome)
}
