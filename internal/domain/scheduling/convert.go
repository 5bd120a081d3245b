package scheduling

import (
	"encoding/json"

	"github.com/vetpms/vetpms/internal/platform/fhir"
)

// AppointmentResource is the wire shape of one appointment.
type AppointmentResource struct {
	ResourceType string             `json:"resourceType"`
	ID           string             `json:"id"`
	Status       string             `json:"status,omitempty"`
	Start        string             `json:"start,omitempty"`
	Participant  []fhir.Participant `json:"participant,omitempty"`
	Extension    []fhir.Extension   `json:"extension,omitempty"`
}

// ToAppointmentResource encodes one appointment. When the booking form's
// free-text date and time are present the start instant is assembled from
// them, and a pair that does not resolve to a valid instant fails the whole
// encode. Records decoded from the wire carry only the normalized start
// instant, so an absent pair falls back to it.
func ToAppointmentResource(a Appointment) (AppointmentResource, error) {
	start := a.Start
	if a.DateText != "" || a.TimeText != "" {
		assembled, err := fhir.AssembleInstant(a.DateText, a.TimeText)
		if err != nil {
			return AppointmentResource{}, err
		}
		start = assembled
	}

	r := AppointmentResource{
		ResourceType: "Appointment",
		ID:           a.FHIRID,
		Status:       a.Status,
		Start:        start,
	}

	if a.OwnerID != "" {
		r.Participant = append(r.Participant,
			fhir.NewParticipant(fhir.RefPatient+a.OwnerID, a.OwnerName))
	}
	if a.VetID != "" {
		r.Participant = append(r.Participant,
			fhir.NewParticipant(fhir.RefPractitioner+a.VetID, a.VetName))
	}

	if a.TokenNumber != "" {
		r.Extension = append(r.Extension, fhir.String(fhir.ExtTokenNumber, a.TokenNumber))
	}
	if a.Source != "" {
		r.Extension = append(r.Extension, fhir.String(fhir.ExtAppointmentSource, a.Source))
	}
	for _, sl := range a.Slots {
		r.Extension = append(r.Extension, encodeSlot(sl))
	}
	return r, nil
}

// FromAppointmentResource decodes one appointment resource. Missing
// participants, extensions, and slots all yield type-appropriate defaults.
func FromAppointmentResource(r AppointmentResource) Appointment {
	a := Appointment{
		FHIRID: r.ID,
		Status: r.Status,
		Start:  r.Start,
	}
	a.OwnerID, a.OwnerName = fhir.ResolveActor(r.Participant, fhir.RefPatient)
	a.VetID, a.VetName = fhir.ResolveActor(r.Participant, fhir.RefPractitioner)
	a.HospitalID, a.HospitalName = fhir.ResolveActor(r.Participant, fhir.RefOrganization)
	a.TokenNumber = fhir.GetString(r.Extension, fhir.ExtTokenNumber)
	a.Source = fhir.GetString(r.Extension, fhir.ExtAppointmentSource)
	a.Slots = decodeSlots(r.Extension)
	return a
}

func encodeSlot(sl Slot) fhir.Extension {
	return fhir.Nested(fhir.ExtSlot, []fhir.Extension{
		fhir.String(fhir.SlotTime, sl.Time),
		fhir.String(fhir.SlotTime24, sl.Time24),
		fhir.String(fhir.SlotID, sl.ID),
		fhir.Boolean(fhir.SlotIsBooked, sl.IsBooked),
		fhir.Boolean(fhir.SlotSelected, sl.Selected),
	})
}

// decodeSlots rebuilds the slot list from the resource's extension array.
// Inner fields are looked up by URL, never by position.
func decodeSlots(exts []fhir.Extension) []Slot {
	var slots []Slot
	for _, e := range exts {
		if e.URL != fhir.ExtSlot {
			continue
		}
		slots = append(slots, Slot{
			Time:     fhir.GetString(e.Extension, fhir.SlotTime),
			Time24:   fhir.GetString(e.Extension, fhir.SlotTime24),
			ID:       fhir.GetString(e.Extension, fhir.SlotID),
			IsBooked: fhir.GetBoolean(e.Extension, fhir.SlotIsBooked),
			Selected: fhir.GetBoolean(e.Extension, fhir.SlotSelected),
		})
	}
	return slots
}

// ToSearchsetBundle wraps one page of appointments into a searchset bundle.
// Encode fails on the first appointment whose date/time pair is invalid.
func ToSearchsetBundle(pg Page) (*fhir.Bundle, error) {
	resources := make([]interface{}, 0, len(pg.Appointments))
	for _, a := range pg.Appointments {
		r, err := ToAppointmentResource(a)
		if err != nil {
			return nil, err
		}
		resources = append(resources, r)
	}
	return fhir.NewSearchsetBundle(resources, fhir.Paging{
		TotalItems:  pg.TotalItems,
		TotalPages:  pg.TotalPages,
		CurrentPage: pg.CurrentPage,
	}), nil
}

// FromSearchsetBundle unwraps a searchset bundle back into a page. Entries
// that fail to unmarshal are skipped rather than failing the page.
func FromSearchsetBundle(b *fhir.Bundle) Page {
	paging := b.Paging()
	pg := Page{
		TotalItems:  paging.TotalItems,
		TotalPages:  paging.TotalPages,
		CurrentPage: paging.CurrentPage,
	}
	for _, raw := range b.Resources() {
		var r AppointmentResource
		if err := json.Unmarshal(raw, &r); err != nil {
			continue
		}
		pg.Appointments = append(pg.Appointments, FromAppointmentResource(r))
	}
	return pg
}
