package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	cats map[uuid.UUID]*Category
}

func newMockRepo() *mockRepo {
	return &mockRepo{cats: make(map[uuid.UUID]*Category)}
}

func (m *mockRepo) Create(_ context.Context, cat *Category) error {
	cat.ID = uuid.New()
	if cat.FHIRID == "" {
		cat.FHIRID = cat.ID.String()
	}
	cp := *cat
	m.cats[cat.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Category, error) {
	cat, ok := m.cats[id]
	if !ok {
		return nil, fmt.Errorf("category not found")
	}
	return cat, nil
}

func (m *mockRepo) GetByFHIRID(_ context.Context, fhirID string) (*Category, error) {
	for _, cat := range m.cats {
		if cat.FHIRID == fhirID {
			return cat, nil
		}
	}
	return nil, fmt.Errorf("category not found")
}

func (m *mockRepo) Update(_ context.Context, cat *Category) error {
	if _, ok := m.cats[cat.ID]; !ok {
		return fmt.Errorf("category not found")
	}
	cp := *cat
	m.cats[cat.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.cats, id)
	return nil
}

func (m *mockRepo) List(_ context.Context) ([]Category, error) {
	var out []Category
	for _, cat := range m.cats {
		out = append(out, *cat)
	}
	return out, nil
}

// ---------------------------------------------------------------------------

func TestCreateRequiresLabel(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.Create(context.Background(), &Category{}); err == nil {
		t.Fatal("expected error for missing label")
	}
}

func TestCreateAssignsIDs(t *testing.T) {
	svc := NewService(newMockRepo())
	cat := &Category{Label: "Pain Meds", BusinessID: "biz-9"}
	if err := svc.Create(context.Background(), cat); err != nil {
		t.Fatalf("create: %v", err)
	}
	if cat.ID == uuid.Nil || cat.FHIRID == "" {
		t.Errorf("ids not assigned: %+v", cat)
	}
}

func TestUpdateRequiresLabel(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	cat := &Category{Label: "Pain Meds"}
	if err := svc.Create(context.Background(), cat); err != nil {
		t.Fatalf("create: %v", err)
	}
	cat.Label = ""
	if err := svc.Update(context.Background(), cat); err == nil {
		t.Fatal("expected error for empty label")
	}
}
