package reporting

import (
	"fmt"

	"github.com/vetpms/vetpms/internal/platform/fhir"
)

// InventoryReport is the wire shape of the stock expiry report: one resource
// wrapping the whole row list, one top-level extension per row.
type InventoryReport struct {
	ResourceType string           `json:"resourceType"`
	ID           string           `json:"id,omitempty"`
	Extension    []fhir.Extension `json:"extension,omitempty"`
}

// ToInventoryReport encodes the expiry rows into one report resource.
func ToInventoryReport(rows []ExpiryRow) InventoryReport {
	r := InventoryReport{ResourceType: "InventoryReport"}
	for _, row := range rows {
		r.Extension = append(r.Extension, fhir.Nested(fhir.ExtExpiryReportEntry, []fhir.Extension{
			fhir.String(fhir.ReportCategory, row.Category),
			fhir.Integer(fhir.ReportTotalCount, row.TotalCount),
		}))
	}
	return r
}

// FromInventoryReport decodes a report resource back into rows. A resource
// with no extension list yields an empty slice, not an error: absent report
// data is a normal payload state.
func FromInventoryReport(r InventoryReport) []ExpiryRow {
	rows := []ExpiryRow{}
	for _, e := range r.Extension {
		if e.URL != fhir.ExtExpiryReportEntry {
			continue
		}
		rows = append(rows, ExpiryRow{
			Category:   fhir.GetString(e.Extension, fhir.ReportCategory),
			TotalCount: fhir.GetInteger(e.Extension, fhir.ReportTotalCount),
		})
	}
	return rows
}

// PractitionerResource is the wire shape of one doctor in the workload view.
type PractitionerResource struct {
	ResourceType string           `json:"resourceType"`
	ID           string           `json:"id"`
	Name         []fhir.HumanName `json:"name,omitempty"`
}

// WorkloadAppointment is one synthetic appointment in the workload view. It
// exists only to make the per-doctor count visible as countable resources.
type WorkloadAppointment struct {
	ResourceType string             `json:"resourceType"`
	ID           string             `json:"id"`
	Status       string             `json:"status"`
	Participant  []fhir.Participant `json:"participant,omitempty"`
}

// ToWorkloadBundle denormalizes the workload summary into a collection
// bundle: per doctor, one Practitioner resource followed by one synthetic
// Appointment per counted visit. This direction is write-only; the view is
// a report, not a round-trippable record.
func ToWorkloadBundle(loads []DoctorWorkload) *fhir.Bundle {
	var resources []interface{}
	for _, l := range loads {
		resources = append(resources, PractitionerResource{
			ResourceType: "Practitioner",
			ID:           l.DoctorID,
			Name:         []fhir.HumanName{{Text: l.DoctorName}},
		})
		for i := 0; i < l.Appointments; i++ {
			resources = append(resources, WorkloadAppointment{
				ResourceType: "Appointment",
				ID:           fmt.Sprintf("%s-appt-%d", l.DoctorID, i+1),
				Status:       "fulfilled",
				Participant: []fhir.Participant{
					fhir.NewParticipant(fhir.RefPractitioner+l.DoctorID, l.DoctorName),
				},
			})
		}
	}
	return fhir.NewCollectionBundle(resources)
}
