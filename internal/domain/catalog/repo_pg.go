package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const catCols = `id, fhir_id, label, business_id`

func (r *repoPG) scanRow(row pgx.Row) (*Category, error) {
	var cat Category
	err := row.Scan(&cat.ID, &cat.FHIRID, &cat.Label, &cat.BusinessID)
	return &cat, err
}

func (r *repoPG) Create(ctx context.Context, cat *Category) error {
	cat.ID = uuid.New()
	if cat.FHIRID == "" {
		cat.FHIRID = cat.ID.String()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO product_category (id, fhir_id, label, business_id)
		VALUES ($1,$2,$3,$4)`,
		cat.ID, cat.FHIRID, cat.Label, cat.BusinessID)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	return r.scanRow(r.pool.QueryRow(ctx, `SELECT `+catCols+` FROM product_category WHERE id = $1`, id))
}

func (r *repoPG) GetByFHIRID(ctx context.Context, fhirID string) (*Category, error) {
	return r.scanRow(r.pool.QueryRow(ctx, `SELECT `+catCols+` FROM product_category WHERE fhir_id = $1`, fhirID))
}

func (r *repoPG) Update(ctx context.Context, cat *Category) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE product_category SET label=$2, business_id=$3 WHERE id = $1`,
		cat.ID, cat.Label, cat.BusinessID)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM product_category WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context) ([]Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+catCols+` FROM product_category ORDER BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cats []Category
	for rows.Next() {
		cat, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		cats = append(cats, *cat)
	}
	return cats, rows.Err()
}
