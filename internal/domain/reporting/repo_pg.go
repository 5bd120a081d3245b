package reporting

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) ExpiryReport(ctx context.Context, withinDays int) ([]ExpiryRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category, COUNT(*) AS total_count
		FROM inventory_item
		WHERE expiry_date <> ''
		  AND expiry_date::date <= CURRENT_DATE + $1 * INTERVAL '1 day'
		GROUP BY category
		ORDER BY category`, withinDays)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ExpiryRow
	for rows.Next() {
		var row ExpiryRow
		if err := rows.Scan(&row.Category, &row.TotalCount); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *repoPG) DoctorWorkload(ctx context.Context) ([]DoctorWorkload, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT vet_id, MAX(vet_name) AS vet_name, COUNT(*) AS appointments
		FROM appointment
		WHERE vet_id <> ''
		GROUP BY vet_id
		ORDER BY appointments DESC, vet_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []DoctorWorkload
	for rows.Next() {
		var l DoctorWorkload
		if err := rows.Scan(&l.DoctorID, &l.DoctorName, &l.Appointments); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
