package catalog

import (
	"strings"

	"github.com/vetpms/vetpms/internal/platform/fhir"
)

// Basic is the wire shape of one product category. The business id travels
// as a single extension whose value is a nested identifier object, not a
// plain scalar; this pairing (URL and value key) is fixed wire contract.
type Basic struct {
	ResourceType string               `json:"resourceType"`
	ID           string               `json:"id"`
	Code         fhir.CodeableConcept `json:"code"`
	Extension    []fhir.Extension     `json:"extension"`
}

// Slugify lowercases a label and collapses internal whitespace runs into
// single hyphens, producing the coding code for a category.
func Slugify(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(label), "-"))
}

// ToBasic encodes one category. The original label is carried twice, as
// code.text and as the coding display; the coding code is the slug.
func ToBasic(cat Category) Basic {
	return Basic{
		ResourceType: "Basic",
		ID:           cat.FHIRID,
		Code: fhir.CodeableConcept{
			Coding: []fhir.Coding{{Code: Slugify(cat.Label), Display: cat.Label}},
			Text:   cat.Label,
		},
		Extension: []fhir.Extension{
			fhir.IdentifierValue(fhir.ExtCatalogBusinessID, fhir.Identifier{
				System: fhir.IdentBusiness,
				Value:  cat.BusinessID,
			}),
		},
	}
}

// ToBasicList encodes one resource per category.
func ToBasicList(cats []Category) []Basic {
	out := make([]Basic, len(cats))
	for i, cat := range cats {
		out[i] = ToBasic(cat)
	}
	return out
}

// FromBasic decodes a Basic resource. The label prefers code.text and falls
// back to the coding display; the slug is not reversed.
func FromBasic(r Basic) Category {
	label := r.Code.Text
	if label == "" && len(r.Code.Coding) > 0 {
		label = r.Code.Coding[0].Display
	}
	return Category{
		FHIRID:     r.ID,
		Label:      label,
		BusinessID: fhir.GetIdentifier(r.Extension, fhir.ExtCatalogBusinessID).Value,
	}
}
