package scheduling

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	appts map[uuid.UUID]*Appointment
}

func newMockRepo() *mockRepo {
	return &mockRepo{appts: make(map[uuid.UUID]*Appointment)}
}

func (m *mockRepo) Create(_ context.Context, a *Appointment) error {
	a.ID = uuid.New()
	if a.FHIRID == "" {
		a.FHIRID = a.ID.String()
	}
	cp := *a
	m.appts[a.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Appointment, error) {
	a, ok := m.appts[id]
	if !ok {
		return nil, fmt.Errorf("appointment not found")
	}
	return a, nil
}

func (m *mockRepo) GetByFHIRID(_ context.Context, fhirID string) (*Appointment, error) {
	for _, a := range m.appts {
		if a.FHIRID == fhirID {
			return a, nil
		}
	}
	return nil, fmt.Errorf("appointment not found")
}

func (m *mockRepo) Update(_ context.Context, a *Appointment) error {
	if _, ok := m.appts[a.ID]; !ok {
		return fmt.Errorf("appointment not found")
	}
	cp := *a
	m.appts[a.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.appts, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]Appointment, int, error) {
	var all []Appointment
	for _, a := range m.appts {
		all = append(all, *a)
	}
	total := len(all)
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// ---------------------------------------------------------------------------

func TestCreateRequiresOwner(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.Create(context.Background(), &Appointment{
		DateText: "13 Jan 2025", TimeText: "10:00 AM",
	})
	if err == nil {
		t.Fatal("expected error for missing owner")
	}
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.Create(context.Background(), &Appointment{
		OwnerID: "owner-9", DateText: "13 2025", TimeText: "10:00 AM",
	})
	if err == nil {
		t.Fatal("expected error for two-token date")
	}
}

func TestCreateResolvesStartAndDefaultsStatus(t *testing.T) {
	svc := NewService(newMockRepo())
	a := &Appointment{OwnerID: "owner-9", DateText: "13 Jan 2025", TimeText: "10:00 AM"}
	if err := svc.Create(context.Background(), a); err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Start != "2025-01-13T10:00:00Z" {
		t.Errorf("start = %q, want 2025-01-13T10:00:00Z", a.Start)
	}
	if a.Status != "booked" {
		t.Errorf("status = %q, want booked", a.Status)
	}
	if a.CreatedAt == "" || a.UpdatedAt == "" {
		t.Error("expected timestamps to be set")
	}
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	svc := NewService(newMockRepo())
	err := svc.Create(context.Background(), &Appointment{
		OwnerID: "owner-9", Status: "tentative",
		DateText: "13 Jan 2025", TimeText: "10:00 AM",
	})
	if err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestListPagePaging(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	for i := 0; i < 5; i++ {
		a := &Appointment{
			OwnerID: "owner-9", DateText: "13 Jan 2025", TimeText: "10:00 AM",
		}
		if err := svc.Create(context.Background(), a); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	pg, err := svc.ListPage(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if pg.TotalItems != 5 || pg.TotalPages != 3 || pg.CurrentPage != 1 {
		t.Errorf("paging = (%d, %d, %d), want (5, 3, 1)",
			pg.TotalItems, pg.TotalPages, pg.CurrentPage)
	}
}

func TestListPageEmpty(t *testing.T) {
	svc := NewService(newMockRepo())
	pg, err := svc.ListPage(context.Background(), 1, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if pg.TotalItems != 0 || pg.TotalPages != 1 || pg.CurrentPage != 1 {
		t.Errorf("paging = (%d, %d, %d), want (0, 1, 1)",
			pg.TotalItems, pg.TotalPages, pg.CurrentPage)
	}
}
