package inventory

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

const itemCols = `id, fhir_id, business_id, name, generic_name, category, strength,
	barcode, batch_number, sku, cost_price, selling_price, markup,
	quantity_in_stock, stock_reorder_level, expiry_date, created_at, updated_at`

func (r *repoPG) scanRow(row pgx.Row) (*Item, error) {
	var it Item
	err := row.Scan(&it.ID, &it.FHIRID, &it.BusinessID, &it.Name, &it.GenericName,
		&it.Category, &it.Strength, &it.Barcode, &it.BatchNumber, &it.SKU,
		&it.CostPrice, &it.SellingPrice, &it.Markup,
		&it.QuantityInStock, &it.StockReorderLevel,
		&it.ExpiryDate, &it.CreatedAt, &it.UpdatedAt)
	return &it, err
}

func (r *repoPG) Create(ctx context.Context, it *Item) error {
	it.ID = uuid.New()
	if it.FHIRID == "" {
		it.FHIRID = it.ID.String()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO inventory_item (id, fhir_id, business_id, name, generic_name,
			category, strength, barcode, batch_number, sku,
			cost_price, selling_price, markup,
			quantity_in_stock, stock_reorder_level, expiry_date,
			created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`,
		it.ID, it.FHIRID, it.BusinessID, it.Name, it.GenericName,
		it.Category, it.Strength, it.Barcode, it.BatchNumber, it.SKU,
		it.CostPrice, it.SellingPrice, it.Markup,
		it.QuantityInStock, it.StockReorderLevel, it.ExpiryDate,
		it.CreatedAt, it.UpdatedAt)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	return r.scanRow(r.pool.QueryRow(ctx, `SELECT `+itemCols+` FROM inventory_item WHERE id = $1`, id))
}

func (r *repoPG) GetByFHIRID(ctx context.Context, fhirID string) (*Item, error) {
	return r.scanRow(r.pool.QueryRow(ctx, `SELECT `+itemCols+` FROM inventory_item WHERE fhir_id = $1`, fhirID))
}

func (r *repoPG) Update(ctx context.Context, it *Item) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE inventory_item SET business_id=$2, name=$3, generic_name=$4,
			category=$5, strength=$6, barcode=$7, batch_number=$8, sku=$9,
			cost_price=$10, selling_price=$11, markup=$12,
			quantity_in_stock=$13, stock_reorder_level=$14, expiry_date=$15,
			updated_at=$16
		WHERE id = $1`,
		it.ID, it.BusinessID, it.Name, it.GenericName,
		it.Category, it.Strength, it.Barcode, it.BatchNumber, it.SKU,
		it.CostPrice, it.SellingPrice, it.Markup,
		it.QuantityInStock, it.StockReorderLevel, it.ExpiryDate,
		it.UpdatedAt)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM inventory_item WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]Item, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_item`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+itemCols+` FROM inventory_item ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []Item
	for rows.Next() {
		it, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *it)
	}
	return items, total, rows.Err()
}
