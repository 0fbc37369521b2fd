package service

import (
	"context"
	"fmt"

	"github.com/medpak/webster-service/internal/domain/model"
	"github.com/medpak/webster-service/internal/repository"
)

// AuditService records and queries the persisted audit trail. Writes are
// best-effort at the call sites; queries back the compliance endpoints.
type AuditService interface {
	Record(ctx context.Context, entry *model.AuditEntry) error
	RecordBatch(ctx context.Context, entries []*model.AuditEntry) error
	Query(ctx context.Context, q model.AuditQuery) ([]model.AuditEntry, error)
	Count(ctx context.Context, q model.AuditQuery) (int64, error)
}

// AuditServiceImpl implements AuditService over the audit repository.
type AuditServiceImpl struct {
	repo repository.AuditRepositoryInterface
}

// NewAuditService creates the audit service.
func NewAuditService(repo repository.AuditRepositoryInterface) *AuditServiceImpl {
	return &AuditServiceImpl{repo: repo}
}

// Record persists a single audit entry.
func (s *AuditServiceImpl) Record(ctx context.Context, entry *model.AuditEntry) error {
	if entry == nil || entry.Action == "" {
		return fmt.Errorf("audit entry requires an action")
	}
	return s.repo.Create(ctx, entry)
}

// RecordBatch persists a batch of audit entries in one write.
func (s *AuditServiceImpl) RecordBatch(ctx context.Context, entries []*model.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return s.repo.CreateMany(ctx, entries)
}

// Query returns audit entries matching the filter, newest first.
func (s *AuditServiceImpl) Query(ctx context.Context, q model.AuditQuery) ([]model.AuditEntry, error) {
	if q.Limit <= 0 || q.Limit > 500 {
		q.Limit = 100
	}
	return s.repo.Query(ctx, q)
}

// Count returns the number of entries matching the filter.
func (s *AuditServiceImpl) Count(ctx context.Context, q model.AuditQuery) (int64, error) {
	return s.repo.Count(ctx, q)
}
