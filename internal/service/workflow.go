package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medpak/webster-service/internal/domain/model"
	"github.com/medpak/webster-service/internal/metrics"
	"github.com/medpak/webster-service/internal/repository"
)

// TransitionOutcome reports what the status derivation rule decided.
type TransitionOutcome string

const (
	// TransitionedToCompleted means this call moved the pack to completed.
	TransitionedToCompleted TransitionOutcome = "transitioned_to_completed"
	// NoTransition means the derivation rule did not fire: either some step
	// is still open or the pack was already completed.
	NoTransition TransitionOutcome = "no_transition"
)

// CompletionResult is the outcome of a successful step completion.
type CompletionResult struct {
	Item       model.ChecklistItem `json:"item"`
	Transition TransitionOutcome   `json:"transition"`
}

// PackCompleted reports whether this completion finished the whole pack.
func (r CompletionResult) PackCompleted() bool {
	return r.Transition == TransitionedToCompleted
}

// VerificationOutcome classifies a barcode verification attempt.
type VerificationOutcome string

const (
	// Verified means the barcode matched a line item in the pack.
	Verified VerificationOutcome = "verified"
	// NotFound means no line item carries the scanned barcode. This is a
	// business outcome surfaced as a warning, not an error.
	NotFound VerificationOutcome = "not_found"
)

// VerificationResult is the outcome of a barcode verification attempt.
type VerificationResult struct {
	Outcome VerificationOutcome `json:"outcome"`
	Barcode string              `json:"barcode"`
	// LineItem is the matched medication line, set when Outcome is Verified.
	LineItem *model.PackMedication `json:"line_item,omitempty"`
	// StepCompletion is set when the match auto-completed the
	// "Verify Medications" step.
	StepCompletion *CompletionResult `json:"step_completion,omitempty"`
}

// Workflow is the pack preparation workflow: checklist tracking, barcode
// verification, and status derivation. All operations are safe for
// concurrent use; mutations on the same pack are serialized.
type Workflow interface {
	CompleteStep(ctx context.Context, packID, stepID, pharmacistID primitive.ObjectID, notes string) (*CompletionResult, error)
	VerifyByBarcode(ctx context.Context, packID primitive.ObjectID, barcode string, pharmacistID primitive.ObjectID) (*VerificationResult, error)
	Reevaluate(ctx context.Context, packID primitive.ObjectID) (TransitionOutcome, error)
}

// WorkflowOption configures a WorkflowService.
type WorkflowOption func(*WorkflowService)

// WithAudit enables persisted audit entries for workflow actions.
func WithAudit(audit AuditService) WorkflowOption {
	return func(s *WorkflowService) {
		s.audit = audit
	}
}

// WithStatusWriteRetry overrides the retry policy for the derivation write.
func WithStatusWriteRetry(attempts int, delay time.Duration) WorkflowOption {
	return func(s *WorkflowService) {
		if attempts > 0 {
			s.statusWriteAttempts = attempts
		}
		s.statusWriteDelay = delay
	}
}

// WorkflowService implements Workflow over the pack and checklist
// repositories. It is stateless apart from the per-pack lock arena; every
// invocation reads current state, decides, and writes.
type WorkflowService struct {
	packs     repository.PackRepositoryInterface
	checklist repository.ChecklistRepositoryInterface
	audit     AuditService
	locks     *packLocks

	// The derivation write is the only retried operation: a failed status
	// write after a successful item write leaves the completion invariant
	// violated until someone mutates the checklist again.
	statusWriteAttempts int
	statusWriteDelay    time.Duration
}

// NewWorkflowService creates the workflow service.
func NewWorkflowService(packs repository.PackRepositoryInterface, checklist repository.ChecklistRepositoryInterface, opts ...WorkflowOption) *WorkflowService {
	s := &WorkflowService{
		packs:               packs,
		checklist:           checklist,
		locks:               newPackLocks(),
		statusWriteAttempts: 3,
		statusWriteDelay:    50 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CompleteStep marks one checklist item complete on behalf of a pharmacist
// and re-derives the pack status. It fails with ErrPackAlreadyCompleted on a
// terminal pack and ErrStepNotFound when the item does not belong to the
// pack; neither failure mutates anything.
func (s *WorkflowService) CompleteStep(ctx context.Context, packID, stepID, pharmacistID primitive.ObjectID, notes string) (*CompletionResult, error) {
	start := time.Now()
	unlock := s.locks.lock(packID.Hex())
	defer unlock()

	result, err := s.completeStepLocked(ctx, packID, stepID, pharmacistID, notes)

	switch {
	case err == nil:
		metrics.RecordStepCompletion("success", time.Since(start))
	case err == ErrPackAlreadyCompleted:
		metrics.RecordStepCompletion("pack_already_completed", time.Since(start))
	case err == ErrStepNotFound:
		metrics.RecordStepCompletion("step_not_found", time.Since(start))
	default:
		metrics.RecordStepCompletion("error", time.Since(start))
	}
	return result, err
}

// completeStepLocked is CompleteStep with the pack lock already held, so the
// barcode path can reuse it inside its own critical section.
func (s *WorkflowService) completeStepLocked(ctx context.Context, packID, stepID, pharmacistID primitive.ObjectID, notes string) (*CompletionResult, error) {
	pack, err := s.packs.GetByID(ctx, packID)
	if err != nil {
		return nil, fmt.Errorf("loading pack: %w", err)
	}
	if pack == nil {
		return nil, ErrPackNotFound
	}
	if pack.Status.Terminal() {
		return nil, ErrPackAlreadyCompleted
	}

	// The update pins both the item and the owning pack; a stale UI handing
	// us a foreign step id matches nothing.
	item, err := s.checklist.MarkCompleted(ctx, stepID, packID, pharmacistID, time.Now(), notes)
	if err != nil {
		return nil, fmt.Errorf("completing step: %w", err)
	}
	if item == nil {
		return nil, ErrStepNotFound
	}

	// The item write is acknowledged at this point; the derivation below
	// reads post-write state.
	outcome, err := s.reevaluateLocked(ctx, packID)
	if err != nil {
		// The item is completed but the status write failed beyond retry.
		// Surface the fault; the next checklist mutation re-derives.
		return nil, fmt.Errorf("deriving pack status: %w", err)
	}

	s.recordAudit(&model.AuditEntry{
		Action:       model.ActionStepCompleted,
		Message:      "Checklist step completed",
		PackID:       packID.Hex(),
		PharmacistID: pharmacistID.Hex(),
		Fields: map[string]interface{}{
			"step_id":   stepID.Hex(),
			"step_name": item.StepName,
		},
	})
	if outcome == TransitionedToCompleted {
		s.recordAudit(&model.AuditEntry{
			Action:       model.ActionPackCompleted,
			Message:      "All checklist steps completed, pack marked completed",
			PackID:       packID.Hex(),
			PharmacistID: pharmacistID.Hex(),
		})
	}

	return &CompletionResult{Item: *item, Transition: outcome}, nil
}

// VerifyByBarcode matches a scanned code against the pack's medication line
// items. A match auto-completes the "Verify Medications" step when present
// and still open; an unmatched code changes nothing and is reported as a
// NotFound outcome, not an error.
func (s *WorkflowService) VerifyByBarcode(ctx context.Context, packID primitive.ObjectID, barcode string, pharmacistID primitive.ObjectID) (*VerificationResult, error) {
	start := time.Now()
	unlock := s.locks.lock(packID.Hex())
	defer unlock()

	pack, err := s.packs.GetByID(ctx, packID)
	if err != nil {
		metrics.RecordScanVerification("error", time.Since(start))
		return nil, fmt.Errorf("loading pack: %w", err)
	}
	if pack == nil {
		metrics.RecordScanVerification("pack_not_found", time.Since(start))
		return nil, ErrPackNotFound
	}

	meds, err := s.packs.ListMedications(ctx, packID)
	if err != nil {
		metrics.RecordScanVerification("error", time.Since(start))
		return nil, fmt.Errorf("loading line items: %w", err)
	}

	// Exact, case-sensitive scan in load order; the first of any duplicate
	// barcodes wins. Webster packs hold tens of medications, a linear scan
	// is plenty.
	var matched *model.PackMedication
	for i := range meds {
		if meds[i].Medication != nil && meds[i].Medication.Barcode == barcode {
			matched = &meds[i]
			break
		}
	}

	if matched == nil {
		metrics.RecordScanVerification("not_found", time.Since(start))
		s.recordAudit(&model.AuditEntry{
			Action:       model.ActionScanUnmatched,
			Message:      "Scanned barcode matched no medication in pack",
			PackID:       packID.Hex(),
			PharmacistID: pharmacistID.Hex(),
			Fields:       map[string]interface{}{"barcode": barcode},
		})
		return &VerificationResult{Outcome: NotFound, Barcode: barcode}, nil
	}

	result := &VerificationResult{Outcome: Verified, Barcode: barcode, LineItem: matched}

	s.recordAudit(&model.AuditEntry{
		Action:       model.ActionScanVerified,
		Message:      "Medication verified by barcode",
		PackID:       packID.Hex(),
		PharmacistID: pharmacistID.Hex(),
		Fields: map[string]interface{}{
			"barcode":       barcode,
			"medication_id": matched.MedicationID.Hex(),
		},
	})

	// A verified scan on an already-completed pack stays a plain Verified:
	// the checklist is terminal and must not be touched.
	if pack.Status.Terminal() {
		metrics.RecordScanVerification("verified", time.Since(start))
		return result, nil
	}

	items, err := s.checklist.ListByPack(ctx, packID)
	if err != nil {
		metrics.RecordScanVerification("error", time.Since(start))
		return nil, fmt.Errorf("loading checklist: %w", err)
	}

	for i := range items {
		if items[i].StepName == model.VerifyMedicationsStep && !items[i].Completed {
			completion, err := s.completeStepLocked(ctx, packID, items[i].ID, pharmacistID, "")
			if err != nil {
				metrics.RecordScanVerification("error", time.Since(start))
				return nil, err
			}
			result.StepCompletion = completion
			break
		}
	}

	metrics.RecordScanVerification("verified", time.Since(start))
	return result, nil
}

// Reevaluate applies the derivation rule: the pack becomes completed exactly
// when every checklist item is completed. Calling it again without an
// intervening mutation reports NoTransition.
func (s *WorkflowService) Reevaluate(ctx context.Context, packID primitive.ObjectID) (TransitionOutcome, error) {
	unlock := s.locks.lock(packID.Hex())
	defer unlock()
	return s.reevaluateLocked(ctx, packID)
}

func (s *WorkflowService) reevaluateLocked(ctx context.Context, packID primitive.ObjectID) (TransitionOutcome, error) {
	items, err := s.checklist.ListByPack(ctx, packID)
	if err != nil {
		return NoTransition, fmt.Errorf("loading checklist: %w", err)
	}
	if !model.AllCompleted(items) {
		return NoTransition, nil
	}

	// Conditional write: exactly one racing derivation observes the
	// transition; the rest see an already-completed pack. Retried because
	// the checklist is already mutated by the time we get here.
	var transitioned bool
	var lastErr error
	for attempt := 0; attempt < s.statusWriteAttempts; attempt++ {
		if attempt > 0 && s.statusWriteDelay > 0 {
			select {
			case <-time.After(s.statusWriteDelay):
			case <-ctx.Done():
				return NoTransition, ctx.Err()
			}
		}
		transitioned, lastErr = s.packs.CompleteStatusCAS(ctx, packID)
		if lastErr == nil {
			break
		}
		log.Warn().
			Err(lastErr).
			Str("pack_id", packID.Hex()).
			Int("attempt", attempt+1).
			Msg("Pack status derivation write failed")
	}
	if lastErr != nil {
		return NoTransition, fmt.Errorf("persisting status transition: %w", lastErr)
	}

	if !transitioned {
		return NoTransition, nil
	}

	metrics.RecordPackTransition(string(model.StatusCompleted))
	return TransitionedToCompleted, nil
}

// recordAudit persists an audit entry without blocking the workflow. Audit
// is best-effort; failures are logged and dropped.
func (s *WorkflowService) recordAudit(entry *model.AuditEntry) {
	if s.audit == nil {
		return
	}
	entry.Timestamp = time.Now()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.audit.Record(ctx, entry); err != nil {
			log.Warn().Err(err).Str("action", entry.Action).Msg("Failed to persist audit entry")
		}
	}()
}
