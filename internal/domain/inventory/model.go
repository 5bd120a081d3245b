package inventory

import (
	"github.com/google/uuid"
)

// Item maps to the inventory_item table. Dates and timestamps are carried as
// ISO strings end to end; the conversion layer never reinterprets them.
type Item struct {
	ID                uuid.UUID `db:"id" json:"id"`
	FHIRID            string    `db:"fhir_id" json:"fhir_id"`
	BusinessID        string    `db:"business_id" json:"business_id"`
	Name              string    `db:"name" json:"name"`
	GenericName       string    `db:"generic_name" json:"generic_name"`
	Category          string    `db:"category" json:"category"`
	Strength          string    `db:"strength" json:"strength"`
	Barcode           string    `db:"barcode" json:"barcode"`
	BatchNumber       string    `db:"batch_number" json:"batch_number"`
	SKU               string    `db:"sku" json:"sku"`
	CostPrice         float64   `db:"cost_price" json:"cost_price"`
	SellingPrice      float64   `db:"selling_price" json:"selling_price"`
	Markup            float64   `db:"markup" json:"markup"`
	QuantityInStock   int       `db:"quantity_in_stock" json:"quantity_in_stock"`
	StockReorderLevel int       `db:"stock_reorder_level" json:"stock_reorder_level"`
	ExpiryDate        string    `db:"expiry_date" json:"expiry_date"`
	CreatedAt         string    `db:"created_at" json:"created_at"`
	UpdatedAt         string    `db:"updated_at" json:"updated_at"`
}

// Page is one page of items together with its paging counters, the domain
// counterpart of a searchset Bundle.
type Page struct {
	Items       []Item `json:"items"`
	TotalItems  int    `json:"total_items"`
	TotalPages  int    `json:"total_pages"`
	CurrentPage int    `json:"current_page"`
}
