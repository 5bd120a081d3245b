package scheduling

import (
	"github.com/google/uuid"
)

// Appointment maps to the appointment table (FHIR Appointment resource).
//
// DateText/TimeText hold the free-text booking form values ("13 Jan 2025",
// "10:00 AM") and feed the encoder; Start holds the normalized RFC3339
// instant and is what decoded payloads populate.
type Appointment struct {
	ID           uuid.UUID `db:"id" json:"id"`
	FHIRID       string    `db:"fhir_id" json:"fhir_id"`
	Status       string    `db:"status" json:"status"`
	DateText     string    `db:"date_text" json:"date_text"`
	TimeText     string    `db:"time_text" json:"time_text"`
	Start        string    `db:"start_at" json:"start"`
	OwnerID      string    `db:"owner_id" json:"owner_id"`
	OwnerName    string    `db:"owner_name" json:"owner_name"`
	VetID        string    `db:"vet_id" json:"vet_id"`
	VetName      string    `db:"vet_name" json:"vet_name"`
	HospitalID   string    `db:"hospital_id" json:"hospital_id"`
	HospitalName string    `db:"hospital_name" json:"hospital_name"`
	TokenNumber  string    `db:"token_number" json:"token_number"`
	Source       string    `db:"source" json:"source"`
	Slots        []Slot    `db:"-" json:"slots,omitempty"`
	CreatedAt    string    `db:"created_at" json:"created_at"`
	UpdatedAt    string    `db:"updated_at" json:"updated_at"`
}

// Slot is one bookable time slot attached to an appointment day.
type Slot struct {
	Time     string `db:"display_time" json:"time"`
	Time24   string `db:"time_24" json:"time24"`
	ID       string `db:"slot_id" json:"_id"`
	IsBooked bool   `db:"is_booked" json:"isBooked"`
	Selected bool   `db:"selected" json:"selected"`
}

// Page is one page of appointments plus its paging counters.
type Page struct {
	Appointments []Appointment `json:"appointments"`
	TotalItems   int           `json:"total_items"`
	TotalPages   int           `json:"total_pages"`
	CurrentPage  int           `json:"current_page"`
}
