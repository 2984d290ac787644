package store

import (
	"context"

	"clinic-scheduling-api/internal/model"
)

func (s *Store) CreateDoctor(ctx context.Context, u *model.User, d *model.Doctor) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := insertUser(ctx, tx, u); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	d.UserID = u.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO doctors (id, user_id, specialization, license_number, experience, qualification, consultation_fee)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 RETURNING created_at`,
		d.ID, d.UserID, d.Specialization, d.LicenseNumber, d.Experience,
		d.Qualification, d.ConsultationFee,
	).Scan(&d.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) ListDoctors(ctx context.Context) ([]model.DoctorRow, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT d.id, d.user_id, d.specialization, d.license_number, d.experience,
		        d.qualification, d.consultation_fee, d.created_at,
		        u.first_name, u.last_name, u.email, u.phone
		 FROM doctors d
		 JOIN users u ON d.user_id = u.id
		 ORDER BY u.first_name, u.last_name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.DoctorRow{}
	for rows.Next() {
		var d model.DoctorRow
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.Specialization, &d.LicenseNumber, &d.Experience,
			&d.Qualification, &d.ConsultationFee, &d.CreatedAt,
			&d.FirstName, &d.LastName, &d.Email, &d.Phone,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// DeleteDoctor removes only the profile row. The owning account is left
// behind on purpose: this asymmetry with DeletePatient matches the system
// this replaces.
func (s *Store) DeleteDoctor(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	return err
}
