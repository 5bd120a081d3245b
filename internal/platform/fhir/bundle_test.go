package fhir

import (
	"encoding/json"
	"testing"
)

func TestNewSearchsetBundle_EncodesPaging(t *testing.T) {
	resources := []interface{}{
		Resource{ResourceType: "SupplyItem", ID: "item-1"},
		Resource{ResourceType: "SupplyItem", ID: "item-2"},
	}
	b := NewSearchsetBundle(resources, Paging{TotalItems: 7, TotalPages: 4, CurrentPage: 2})

	if b.ResourceType != "Bundle" {
		t.Errorf("resourceType = %q, want Bundle", b.ResourceType)
	}
	if b.Type != "searchset" {
		t.Errorf("type = %q, want searchset", b.Type)
	}
	if b.Total == nil || *b.Total != 7 {
		t.Errorf("total = %v, want 7", b.Total)
	}
	if len(b.Entry) != 2 {
		t.Fatalf("entry count = %d, want 2", len(b.Entry))
	}
	if b.Meta == nil || len(b.Meta.Tag) != 2 {
		t.Fatal("expected two meta.tag entries")
	}

	tags := map[string]string{}
	for _, tag := range b.Meta.Tag {
		tags[tag.System] = tag.Code
	}
	if tags[TagTotalPages] != "4" {
		t.Errorf("totalPages tag = %q, want \"4\"", tags[TagTotalPages])
	}
	if tags[TagCurrentPage] != "2" {
		t.Errorf("currentPage tag = %q, want \"2\"", tags[TagCurrentPage])
	}
}

func TestPaging_Defaults(t *testing.T) {
	b := Bundle{ResourceType: "Bundle", Type: "searchset"}
	pg := b.Paging()
	if pg.TotalItems != 0 {
		t.Errorf("totalItems = %d, want 0", pg.TotalItems)
	}
	if pg.TotalPages != 1 {
		t.Errorf("totalPages = %d, want 1", pg.TotalPages)
	}
	if pg.CurrentPage != 1 {
		t.Errorf("currentPage = %d, want 1", pg.CurrentPage)
	}
}

func TestPaging_ParsesTagCodes(t *testing.T) {
	total := 9
	b := Bundle{
		ResourceType: "Bundle",
		Type:         "searchset",
		Total:        &total,
		Meta: &BundleMeta{Tag: []Coding{
			{System: TagTotalPages, Code: "3"},
			{System: TagCurrentPage, Code: "2"},
		}},
	}
	pg := b.Paging()
	if pg.TotalItems != 9 || pg.TotalPages != 3 || pg.CurrentPage != 2 {
		t.Errorf("paging = %+v, want {9 3 2}", pg)
	}
}

func TestPaging_UnparsableTagCodeDefaults(t *testing.T) {
	b := Bundle{
		ResourceType: "Bundle",
		Type:         "searchset",
		Meta: &BundleMeta{Tag: []Coding{
			{System: TagTotalPages, Code: "not-a-number"},
		}},
	}
	if pg := b.Paging(); pg.TotalPages != 1 {
		t.Errorf("totalPages = %d, want 1", pg.TotalPages)
	}
}

func TestPaging_ForeignTagsIgnored(t *testing.T) {
	b := Bundle{
		ResourceType: "Bundle",
		Type:         "searchset",
		Meta: &BundleMeta{Tag: []Coding{
			{System: "https://example.org/some-other-tag", Code: "99"},
			{System: TagCurrentPage, Code: "5"},
		}},
	}
	pg := b.Paging()
	if pg.CurrentPage != 5 {
		t.Errorf("currentPage = %d, want 5", pg.CurrentPage)
	}
	if pg.TotalPages != 1 {
		t.Errorf("totalPages = %d, want 1", pg.TotalPages)
	}
}

func TestNewCollectionBundle(t *testing.T) {
	b := NewCollectionBundle([]interface{}{
		Resource{ResourceType: "Practitioner", ID: "vet-1"},
	})
	if b.Type != "collection" {
		t.Errorf("type = %q, want collection", b.Type)
	}
	if b.Total != nil {
		t.Error("collection bundle must not carry a total")
	}
	if b.Meta != nil {
		t.Error("collection bundle must not carry paging tags")
	}
}

func TestResources_RoundTrip(t *testing.T) {
	b := NewSearchsetBundle([]interface{}{
		Resource{ResourceType: "SupplyItem", ID: "item-1"},
	}, Paging{TotalItems: 1, TotalPages: 1, CurrentPage: 1})

	raws := b.Resources()
	if len(raws) != 1 {
		t.Fatalf("resource count = %d, want 1", len(raws))
	}
	var r Resource
	if err := json.Unmarshal(raws[0], &r); err != nil {
		t.Fatalf("unmarshal entry: %v", err)
	}
	if r.ID != "item-1" {
		t.Errorf("id = %q, want item-1", r.ID)
	}
}
