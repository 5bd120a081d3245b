package scheduling

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const apptCols = `id, fhir_id, status, date_text, time_text, start_at,
	owner_id, owner_name, vet_id, vet_name, hospital_id, hospital_name,
	token_number, source, created_at, updated_at`

func (r *repoPG) scanRow(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(
		&a.ID, &a.FHIRID, &a.Status, &a.DateText, &a.TimeText, &a.Start,
		&a.OwnerID, &a.OwnerName, &a.VetID, &a.VetName, &a.HospitalID, &a.HospitalName,
		&a.TokenNumber, &a.Source, &a.CreatedAt, &a.UpdatedAt,
	)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	if a.FHIRID == "" {
		a.FHIRID = a.ID.String()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointment (`+apptCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		a.ID, a.FHIRID, a.Status, a.DateText, a.TimeText, a.Start,
		a.OwnerID, a.OwnerName, a.VetID, a.VetName, a.HospitalID, a.HospitalName,
		a.TokenNumber, a.Source, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return err
	}
	return r.replaceSlots(ctx, a.ID, a.Slots)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := r.scanRow(r.pool.QueryRow(ctx, `SELECT `+apptCols+` FROM appointment WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	a.Slots, err = r.loadSlots(ctx, a.ID)
	return a, err
}

func (r *repoPG) GetByFHIRID(ctx context.Context, fhirID string) (*Appointment, error) {
	a, err := r.scanRow(r.pool.QueryRow(ctx, `SELECT `+apptCols+` FROM appointment WHERE fhir_id = $1`, fhirID))
	if err != nil {
		return nil, err
	}
	a.Slots, err = r.loadSlots(ctx, a.ID)
	return a, err
}

func (r *repoPG) Update(ctx context.Context, a *Appointment) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE appointment SET
			status=$2, date_text=$3, time_text=$4, start_at=$5,
			owner_id=$6, owner_name=$7, vet_id=$8, vet_name=$9,
			hospital_id=$10, hospital_name=$11, token_number=$12, source=$13,
			updated_at=$14
		WHERE id = $1`,
		a.ID, a.Status, a.DateText, a.TimeText, a.Start,
		a.OwnerID, a.OwnerName, a.VetID, a.VetName,
		a.HospitalID, a.HospitalName, a.TokenNumber, a.Source,
		a.UpdatedAt)
	if err != nil {
		return err
	}
	return r.replaceSlots(ctx, a.ID, a.Slots)
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM appointment_slot WHERE appointment_id = $1`, id); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, `DELETE FROM appointment WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointment`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptCols+` FROM appointment
		ORDER BY start_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var appts []Appointment
	for rows.Next() {
		a, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		appts = append(appts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for i := range appts {
		appts[i].Slots, err = r.loadSlots(ctx, appts[i].ID)
		if err != nil {
			return nil, 0, err
		}
	}
	return appts, total, nil
}

func (r *repoPG) replaceSlots(ctx context.Context, apptID uuid.UUID, slots []Slot) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM appointment_slot WHERE appointment_id = $1`, apptID); err != nil {
		return err
	}
	for _, sl := range slots {
		_, err := r.pool.Exec(ctx, `
			INSERT INTO appointment_slot (appointment_id, slot_id, display_time, time_24, is_booked, selected)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			apptID, sl.ID, sl.Time, sl.Time24, sl.IsBooked, sl.Selected)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repoPG) loadSlots(ctx context.Context, apptID uuid.UUID) ([]Slot, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT slot_id, display_time, time_24, is_booked, selected
		FROM appointment_slot WHERE appointment_id = $1 ORDER BY time_24`, apptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var slots []Slot
	for rows.Next() {
		var sl Slot
		if err := rows.Scan(&sl.ID, &sl.Time, &sl.Time24, &sl.IsBooked, &sl.Selected); err != nil {
			return nil, err
		}
		slots = append(slots, sl)
	}
	return slots, rows.Err()
}
