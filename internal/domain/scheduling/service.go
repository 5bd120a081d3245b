package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vetpms/vetpms/internal/platform/fhir"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var validStatuses = map[string]bool{
	"proposed": true, "pending": true, "booked": true, "arrived": true,
	"fulfilled": true, "cancelled": true, "noshow": true,
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.OwnerID == "" {
		return fmt.Errorf("owner_id is required")
	}
	if a.Status == "" {
		a.Status = "booked"
	}
	if !validStatuses[a.Status] {
		return fmt.Errorf("invalid appointment status: %s", a.Status)
	}

	// Resolve the start instant up front so a bad date/time pair is caught
	// at booking time, not on the first encode.
	start, err := fhir.AssembleInstant(a.DateText, a.TimeText)
	if err != nil {
		return err
	}
	a.Start = start

	now := time.Now().UTC().Format(time.RFC3339)
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.repo.Create(ctx, a)
}

// CreateDecoded stores an appointment decoded from a wire resource. Those
// carry a normalized start instant rather than the free-text date/time pair,
// so no assembly happens here.
func (s *Service) CreateDecoded(ctx context.Context, a *Appointment) error {
	if a.OwnerID == "" {
		return fmt.Errorf("owner participant is required")
	}
	if a.Status == "" {
		a.Status = "booked"
	}
	if !validStatuses[a.Status] {
		return fmt.Errorf("invalid appointment status: %s", a.Status)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.repo.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByFHIRID(ctx context.Context, fhirID string) (*Appointment, error) {
	return s.repo.GetByFHIRID(ctx, fhirID)
}

func (s *Service) Update(ctx context.Context, a *Appointment) error {
	if a.Status != "" && !validStatuses[a.Status] {
		return fmt.Errorf("invalid appointment status: %s", a.Status)
	}
	if a.DateText != "" || a.TimeText != "" {
		start, err := fhir.AssembleInstant(a.DateText, a.TimeText)
		if err != nil {
			return err
		}
		a.Start = start
	}
	a.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// ListPage returns one page of appointments with paging counters computed
// from the full result count.
func (s *Service) ListPage(ctx context.Context, page, pageSize int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	appts, total, err := s.repo.List(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return &Page{
		Appointments: appts,
		TotalItems:   total,
		TotalPages:   totalPages,
		CurrentPage:  page,
	}, nil
}
