package reporting

// ExpiryRow is one aggregated row of the stock expiry report: how many
// inventory items of a category expire within the reporting window.
type ExpiryRow struct {
	Category   string `db:"category" json:"category"`
	TotalCount int    `db:"total_count" json:"totalCount"`
}

// DoctorWorkload is one doctor's share of the appointment load.
type DoctorWorkload struct {
	DoctorID     string `db:"doctor_id" json:"doctor_id"`
	DoctorName   string `db:"doctor_name" json:"doctor_name"`
	Appointments int    `db:"appointments" json:"appointments"`
}
