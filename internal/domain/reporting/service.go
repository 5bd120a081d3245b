package reporting

import "context"

// Default reporting window for the expiry report.
const defaultExpiryWindowDays = 90

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ExpiryReport(ctx context.Context, withinDays int) ([]ExpiryRow, error) {
	if withinDays < 1 {
		withinDays = defaultExpiryWindowDays
	}
	return s.repo.ExpiryReport(ctx, withinDays)
}

func (s *Service) DoctorWorkload(ctx context.Context) ([]DoctorWorkload, error) {
	return s.repo.DoctorWorkload(ctx)
}
