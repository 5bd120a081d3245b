package fhir

import (
	"encoding/json"
	"strconv"
)

// Bundle is the envelope resource wrapping a list of resources plus paging
// metadata. Page counters ride in meta.tag as stringified integers under
// dedicated system URIs; this overloads the tag list as a generic key/value
// side-channel rather than standard Bundle usage, and both sides of the wire
// depend on it.
type Bundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id,omitempty"`
	Type         string        `json:"type"`
	Total        *int          `json:"total,omitempty"`
	Meta         *BundleMeta   `json:"meta,omitempty"`
	Entry        []BundleEntry `json:"entry"`
}

type BundleMeta struct {
	Tag []Coding `json:"tag,omitempty"`
}

type BundleEntry struct {
	Resource json.RawMessage `json:"resource,omitempty"`
}

// Paging holds the counters carried alongside a searchset's entries. An
// un-paginated result set is page 1 of 1.
type Paging struct {
	TotalItems  int
	TotalPages  int
	CurrentPage int
}

// NewSearchsetBundle wraps resources into a searchset Bundle with the paging
// counters encoded as total and meta.tag entries.
func NewSearchsetBundle(resources []interface{}, pg Paging) *Bundle {
	b := &Bundle{
		ResourceType: "Bundle",
		Type:         "searchset",
		Total:        &pg.TotalItems,
		Meta: &BundleMeta{
			Tag: []Coding{
				{System: TagTotalPages, Code: strconv.Itoa(pg.TotalPages)},
				{System: TagCurrentPage, Code: strconv.Itoa(pg.CurrentPage)},
			},
		},
		Entry: makeEntries(resources),
	}
	return b
}

// NewCollectionBundle wraps resources into a collection Bundle with no
// paging metadata.
func NewCollectionBundle(resources []interface{}) *Bundle {
	return &Bundle{
		ResourceType: "Bundle",
		Type:         "collection",
		Entry:        makeEntries(resources),
	}
}

func makeEntries(resources []interface{}) []BundleEntry {
	entries := make([]BundleEntry, len(resources))
	for i, r := range resources {
		raw, _ := json.Marshal(r)
		entries[i] = BundleEntry{Resource: raw}
	}
	return entries
}

// Paging extracts the paging counters from the bundle. Total defaults to 0;
// tag codes that are absent or unparsable default to 1 on both counters.
func (b *Bundle) Paging() Paging {
	pg := Paging{TotalItems: 0, TotalPages: 1, CurrentPage: 1}
	if b.Total != nil {
		pg.TotalItems = *b.Total
	}
	if b.Meta == nil {
		return pg
	}
	for _, tag := range b.Meta.Tag {
		n, err := strconv.Atoi(tag.Code)
		if err != nil {
			continue
		}
		switch tag.System {
		case TagTotalPages:
			pg.TotalPages = n
		case TagCurrentPage:
			pg.CurrentPage = n
		}
	}
	return pg
}

// Resources returns the raw resource of every bundle entry, skipping empty
// entries.
func (b *Bundle) Resources() []json.RawMessage {
	var out []json.RawMessage
	for _, e := range b.Entry {
		if len(e.Resource) > 0 {
			out = append(out, e.Resource)
		}
	}
	return out
}
