package fhir

import "testing"

func sampleParticipants() []Participant {
	return []Participant{
		{Actor: Reference{Reference: "Practitioner/vet-1", Display: "Dr. Asha"}, Status: "accepted"},
		{Actor: Reference{Reference: "Patient/owner-9", Display: "Ben Okafor"}, Status: "accepted"},
		{Actor: Reference{Reference: "Organization/hosp-3", Display: "Lakeside Vet Hospital"}, Status: "accepted"},
	}
}

func TestResolveActor_ByPrefix(t *testing.T) {
	ps := sampleParticipants()

	id, display := ResolveActor(ps, RefPractitioner)
	if id != "vet-1" || display != "Dr. Asha" {
		t.Errorf("practitioner = (%q, %q), want (vet-1, Dr. Asha)", id, display)
	}

	id, display = ResolveActor(ps, RefPatient)
	if id != "owner-9" || display != "Ben Okafor" {
		t.Errorf("patient = (%q, %q), want (owner-9, Ben Okafor)", id, display)
	}

	id, display = ResolveActor(ps, RefOrganization)
	if id != "hosp-3" || display != "Lakeside Vet Hospital" {
		t.Errorf("organization = (%q, %q), want (hosp-3, Lakeside Vet Hospital)", id, display)
	}
}

func TestResolveActor_OrderIndependent(t *testing.T) {
	ps := sampleParticipants()

	// Every permutation of three entries must resolve identically.
	perms := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	for _, perm := range perms {
		shuffled := []Participant{ps[perm[0]], ps[perm[1]], ps[perm[2]]}
		if id, _ := ResolveActor(shuffled, RefOrganization); id != "hosp-3" {
			t.Errorf("perm %v: organization id = %q, want hosp-3", perm, id)
		}
		if id, _ := ResolveActor(shuffled, RefPatient); id != "owner-9" {
			t.Errorf("perm %v: patient id = %q, want owner-9", perm, id)
		}
		if id, _ := ResolveActor(shuffled, RefPractitioner); id != "vet-1" {
			t.Errorf("perm %v: practitioner id = %q, want vet-1", perm, id)
		}
	}
}

func TestResolveActor_MissingYieldsEmpty(t *testing.T) {
	ps := []Participant{
		{Actor: Reference{Reference: "Patient/owner-9", Display: "Ben Okafor"}},
	}
	id, display := ResolveActor(ps, RefOrganization)
	if id != "" || display != "" {
		t.Errorf("missing actor = (%q, %q), want empty strings", id, display)
	}
}

func TestResolveActor_EmptyList(t *testing.T) {
	id, display := ResolveActor(nil, RefPatient)
	if id != "" || display != "" {
		t.Errorf("empty list = (%q, %q), want empty strings", id, display)
	}
}

func TestNewParticipant(t *testing.T) {
	p := NewParticipant("Practitioner/vet-1", "Dr. Asha")
	if p.Actor.Reference != "Practitioner/vet-1" {
		t.Errorf("reference = %q, want Practitioner/vet-1", p.Actor.Reference)
	}
	if p.Actor.Display != "Dr. Asha" {
		t.Errorf("display = %q, want Dr. Asha", p.Actor.Display)
	}
	if p.Status != "accepted" {
		t.Errorf("status = %q, want accepted", p.Status)
	}
}

func TestFormatReference(t *testing.T) {
	if got := FormatReference("Practitioner", "vet-1"); got != "Practitioner/vet-1" {
		t.Errorf("FormatReference = %q, want Practitioner/vet-1", got)
	}
}
