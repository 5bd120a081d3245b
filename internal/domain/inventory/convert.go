package inventory

import (
	"encoding/json"
	"strings"

	"github.com/vetpms/vetpms/internal/platform/fhir"
)

// SupplyItem is the wire shape of one inventory item. The shape is fixed by
// this layer: alternate identifiers in identifier[], the category coding in
// code.coding[0] with the item name as display and the generic name as the
// concept's free text, and the remaining fields as typed extensions.
type SupplyItem struct {
	ResourceType string                `json:"resourceType"`
	ID           string                `json:"id"`
	Identifier   []fhir.Identifier     `json:"identifier"`
	Code         *fhir.CodeableConcept `json:"code,omitempty"`
	Extension    []fhir.Extension      `json:"extension"`
}

// ToSupplyItem encodes an item for wire transport. Encode assumes validated
// input: empty fields encode as empty typed values rather than failing, so
// encode followed by decode-with-default is stable. Category is carried
// twice, as code.coding[0].code and as a typed extension; readers that only
// walk the extension list still see it.
func ToSupplyItem(it Item) SupplyItem {
	return SupplyItem{
		ResourceType: "SupplyItem",
		ID:           it.FHIRID,
		Identifier: []fhir.Identifier{
			{System: fhir.IdentBarcode, Value: it.Barcode},
			{System: fhir.IdentBatchNumber, Value: it.BatchNumber},
			{System: fhir.IdentSKU, Value: it.SKU},
		},
		Code: &fhir.CodeableConcept{
			Coding: []fhir.Coding{{Code: it.Category, Display: it.Name}},
			Text:   it.GenericName,
		},
		Extension: []fhir.Extension{
			fhir.String(fhir.ExtBusinessID, it.BusinessID),
			fhir.String(fhir.ExtCategory, it.Category),
			fhir.String(fhir.ExtStrength, it.Strength),
			fhir.Decimal(fhir.ExtMarkup, it.Markup),
			fhir.Decimal(fhir.ExtCostPrice, it.CostPrice),
			fhir.Decimal(fhir.ExtSellingPrice, it.SellingPrice),
			fhir.Integer(fhir.ExtQuantityInStock, it.QuantityInStock),
			fhir.Integer(fhir.ExtStockReorderLevel, it.StockReorderLevel),
			fhir.Date(fhir.ExtExpiryDate, it.ExpiryDate),
			fhir.DateTime(fhir.ExtCreatedAt, it.CreatedAt),
			fhir.DateTime(fhir.ExtUpdatedAt, it.UpdatedAt),
		},
	}
}

// FromSupplyItem decodes a wire resource back into an item. Missing
// identifiers, codings, or extensions yield the type-appropriate defaults;
// partial payloads from the network boundary are routine.
func FromSupplyItem(r SupplyItem) Item {
	it := Item{
		FHIRID:            r.ID,
		Barcode:           identifierBySystem(r.Identifier, "barcode"),
		BatchNumber:       identifierBySystem(r.Identifier, "batch-number"),
		SKU:               identifierBySystem(r.Identifier, "sku"),
		BusinessID:        fhir.GetString(r.Extension, fhir.ExtBusinessID),
		Strength:          fhir.GetString(r.Extension, fhir.ExtStrength),
		Markup:            fhir.GetDecimal(r.Extension, fhir.ExtMarkup),
		CostPrice:         fhir.GetDecimal(r.Extension, fhir.ExtCostPrice),
		SellingPrice:      fhir.GetDecimal(r.Extension, fhir.ExtSellingPrice),
		QuantityInStock:   fhir.GetInteger(r.Extension, fhir.ExtQuantityInStock),
		StockReorderLevel: fhir.GetInteger(r.Extension, fhir.ExtStockReorderLevel),
		ExpiryDate:        fhir.GetDate(r.Extension, fhir.ExtExpiryDate),
		CreatedAt:         fhir.GetDateTime(r.Extension, fhir.ExtCreatedAt),
		UpdatedAt:         fhir.GetDateTime(r.Extension, fhir.ExtUpdatedAt),
	}
	if r.Code != nil {
		it.GenericName = r.Code.Text
		if len(r.Code.Coding) > 0 {
			it.Category = r.Code.Coding[0].Code
			it.Name = r.Code.Coding[0].Display
		}
	}
	// The coding is the primary carrier for category; the extension copy
	// covers payloads written without a code block.
	if it.Category == "" {
		it.Category = fhir.GetString(r.Extension, fhir.ExtCategory)
	}
	return it
}

// identifierBySystem returns the value of the first identifier whose system
// contains the given token. The identifier array is unordered on the wire.
func identifierBySystem(ids []fhir.Identifier, token string) string {
	for _, id := range ids {
		if strings.Contains(id.System, token) {
			return id.Value
		}
	}
	return ""
}

// ToSearchsetBundle wraps a page of items into a searchset Bundle, with
// totalItems as the Bundle total and totalPages/currentPage in meta.tag.
func ToSearchsetBundle(p Page) *fhir.Bundle {
	resources := make([]interface{}, len(p.Items))
	for i, it := range p.Items {
		resources[i] = ToSupplyItem(it)
	}
	return fhir.NewSearchsetBundle(resources, fhir.Paging{
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
	})
}

// FromSearchsetBundle extracts the items and paging counters from a
// searchset Bundle. Entries that do not unmarshal are skipped.
func FromSearchsetBundle(b *fhir.Bundle) Page {
	pg := b.Paging()
	p := Page{
		Items:       []Item{},
		TotalItems:  pg.TotalItems,
		TotalPages:  pg.TotalPages,
		CurrentPage: pg.CurrentPage,
	}
	for _, raw := range b.Resources() {
		var r SupplyItem
		if err := json.Unmarshal(raw, &r); err != nil {
			continue
		}
		p.Items = append(p.Items, FromSupplyItem(r))
	}
	return p
}
