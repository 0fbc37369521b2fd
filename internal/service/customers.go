package service

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medpak/webster-service/internal/domain/dto"
	"github.com/medpak/webster-service/internal/domain/model"
	"github.com/medpak/webster-service/internal/repository"
)

const defaultSearchLimit = 10

// CustomerService manages the customer register.
type CustomerService interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (*model.Customer, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Search(ctx context.Context, term string) ([]model.Customer, error)
}

// CustomerServiceImpl implements CustomerService over the customer repository.
type CustomerServiceImpl struct {
	repo repository.CustomerRepositoryInterface
}

// NewCustomerService creates the customer service.
func NewCustomerService(repo repository.CustomerRepositoryInterface) *CustomerServiceImpl {
	return &CustomerServiceImpl{repo: repo}
}

// Create registers a new customer.
func (s *CustomerServiceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (*model.Customer, error) {
	customer := &model.Customer{
		FirstName:           strings.TrimSpace(req.FirstName),
		LastName:            strings.TrimSpace(req.LastName),
		MedicareNumber:      strings.TrimSpace(req.MedicareNumber),
		DateOfBirth:         req.DateOfBirth,
		Phone:               strings.TrimSpace(req.Phone),
		Address:             strings.TrimSpace(req.Address),
		SpecialInstructions: req.SpecialInstructions,
	}
	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}
	return created, nil
}

// GetByID fetches one customer. It fails with ErrCustomerNotFound when the
// id matches nothing.
func (s *CustomerServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading customer: %w", err)
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

// List returns all customers ordered by last name.
func (s *CustomerServiceImpl) List(ctx context.Context) ([]model.Customer, error) {
	return s.repo.List(ctx)
}

// Search matches customers by name or Medicare number prefix,
// case-insensitively. An empty term returns no results rather than the
// whole register.
func (s *CustomerServiceImpl) Search(ctx context.Context, term string) ([]model.Customer, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []model.Customer{}, nil
	}
	return s.repo.Search(ctx, term, defaultSearchLimit)
}
