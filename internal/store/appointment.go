package store

import (
	"context"

	"clinic-scheduling-api/internal/model"
)

// CreateAppointment inserts the row as given. Existence of the referenced
// profiles and schedule conflicts are deliberately not checked here; the
// foreign keys are the only guard.
func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO appointments (id, patient_id, doctor_id, date_time, duration, type, notes, symptoms, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 RETURNING created_at, updated_at`,
		a.ID, a.PatientID, a.DoctorID, a.DateTime, a.Duration, a.Type,
		a.Notes, a.Symptoms, a.Status,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

// ListAppointments returns every appointment joined with both participants'
// accounts and the doctor's specialization, most recent first.
func (s *Store) ListAppointments(ctx context.Context) ([]model.AppointmentRow, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT a.id, a.patient_id, a.doctor_id, a.date_time, a.duration, a.type,
		        a.notes, a.symptoms, a.status, a.created_at, a.updated_at,
		        pu.first_name, pu.last_name,
		        du.first_name, du.last_name,
		        d.specialization
		 FROM appointments a
		 JOIN patients p ON a.patient_id = p.id
		 JOIN users pu ON p.user_id = pu.id
		 JOIN doctors d ON a.doctor_id = d.id
		 JOIN users du ON d.user_id = du.id
		 ORDER BY a.date_time DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.AppointmentRow{}
	for rows.Next() {
		var a model.AppointmentRow
		if err := rows.Scan(
			&a.ID, &a.PatientID, &a.DoctorID, &a.DateTime, &a.Duration, &a.Type,
			&a.Notes, &a.Symptoms, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&a.PatientFirstName, &a.PatientLastName,
			&a.DoctorFirstName, &a.DoctorLastName,
			&a.Specialization,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	return err
}
