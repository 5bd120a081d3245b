package catalog

import (
	"github.com/google/uuid"
)

// Category maps to the product_category table.
type Category struct {
	ID         uuid.UUID `db:"id" json:"id"`
	FHIRID     string    `db:"fhir_id" json:"fhir_id"`
	Label      string    `db:"label" json:"label"`
	BusinessID string    `db:"business_id" json:"business_id"`
}
