package service

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medpak/webster-service/internal/domain/dto"
	"github.com/medpak/webster-service/internal/domain/model"
	"github.com/medpak/webster-service/internal/repository"
	"github.com/medpak/webster-service/internal/service/cache"
)

// MedicationService manages the medication catalog. Barcode lookups are the
// hot path during scanning sessions, so they go through a TTL cache that
// also memoizes misses.
type MedicationService interface {
	Create(ctx context.Context, req dto.CreateMedicationRequest) (*model.Medication, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Medication, error)
	GetByBarcode(ctx context.Context, barcode string) (*model.Medication, error)
	List(ctx context.Context, limit int) ([]model.Medication, error)
	CacheStats() cache.Metrics
}

// MedicationServiceImpl implements MedicationService over the medication
// repository with a read-through barcode cache.
type MedicationServiceImpl struct {
	repo         repository.MedicationRepositoryInterface
	barcodeCache cache.Cache
}

// NewMedicationService creates the medication service. The cache may be nil
// to disable barcode caching.
func NewMedicationService(repo repository.MedicationRepositoryInterface, barcodeCache cache.Cache) *MedicationServiceImpl {
	return &MedicationServiceImpl{repo: repo, barcodeCache: barcodeCache}
}

// Create adds a medication to the catalog. The barcode is stored verbatim;
// matching elsewhere is exact and case-sensitive, so no normalization
// happens here beyond trimming whitespace.
func (s *MedicationServiceImpl) Create(ctx context.Context, req dto.CreateMedicationRequest) (*model.Medication, error) {
	med := &model.Medication{
		BrandName: strings.TrimSpace(req.BrandName),
		Strength:  strings.TrimSpace(req.Strength),
		Form:      strings.TrimSpace(req.Form),
		Barcode:   strings.TrimSpace(req.Barcode),
	}
	created, err := s.repo.Create(ctx, med)
	if err != nil {
		return nil, fmt.Errorf("creating medication: %w", err)
	}
	if s.barcodeCache != nil && created.Barcode != "" {
		s.barcodeCache.Invalidate(created.Barcode)
	}
	return created, nil
}

// GetByID fetches one medication. It fails with ErrMedicationNotFound when
// the id matches nothing.
func (s *MedicationServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Medication, error) {
	med, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading medication: %w", err)
	}
	if med == nil {
		return nil, ErrMedicationNotFound
	}
	return med, nil
}

// GetByBarcode resolves a barcode to a catalog medication, exact and
// case-sensitive. A miss returns ErrMedicationNotFound; both hits and
// misses are cached.
func (s *MedicationServiceImpl) GetByBarcode(ctx context.Context, barcode string) (*model.Medication, error) {
	if s.barcodeCache != nil {
		if med, ok := s.barcodeCache.Get(barcode); ok {
			if med == nil {
				return nil, ErrMedicationNotFound
			}
			return med, nil
		}
	}

	med, err := s.repo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, fmt.Errorf("loading medication by barcode: %w", err)
	}
	if s.barcodeCache != nil {
		s.barcodeCache.Set(barcode, med)
	}
	if med == nil {
		return nil, ErrMedicationNotFound
	}
	return med, nil
}

// List returns catalog medications, newest first.
func (s *MedicationServiceImpl) List(ctx context.Context, limit int) ([]model.Medication, error) {
	return s.repo.List(ctx, limit)
}

// CacheStats reports barcode cache hit and miss counters.
func (s *MedicationServiceImpl) CacheStats() cache.Metrics {
	if s.barcodeCache == nil {
		return cache.Metrics{}
	}
	return s.barcodeCache.Stats()
}
