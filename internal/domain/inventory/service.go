package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, it *Item) error {
	if it.Name == "" {
		return fmt.Errorf("name is required")
	}
	if it.CostPrice < 0 || it.SellingPrice < 0 {
		return fmt.Errorf("prices must not be negative")
	}
	if it.QuantityInStock < 0 {
		return fmt.Errorf("quantity_in_stock must not be negative")
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if it.CreatedAt == "" {
		it.CreatedAt = now
	}
	it.UpdatedAt = now
	return s.repo.Create(ctx, it)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByFHIRID(ctx context.Context, fhirID string) (*Item, error) {
	return s.repo.GetByFHIRID(ctx, fhirID)
}

func (s *Service) Update(ctx context.Context, it *Item) error {
	if it.CostPrice < 0 || it.SellingPrice < 0 {
		return fmt.Errorf("prices must not be negative")
	}
	it.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(ctx, it)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// ListPage fetches one page of items with the counters the bundle encoder
// needs. totalPages is never below 1 so that an empty result set still reads
// as page 1 of 1.
func (s *Service) ListPage(ctx context.Context, page, pageSize int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	items, total, err := s.repo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return &Page{
		Items:       items,
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}
