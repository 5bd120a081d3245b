package reporting

import "context"

type Repository interface {
	ExpiryReport(ctx context.Context, withinDays int) ([]ExpiryRow, error)
	DoctorWorkload(ctx context.Context) ([]DoctorWorkload, error)
}
