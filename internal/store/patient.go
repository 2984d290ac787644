package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"clinic-scheduling-api/internal/model"
)

// CreatePatient inserts the owning account and the profile row in a single
// transaction: a failure on either write leaves no orphan behind.
func (s *Store) CreatePatient(ctx context.Context, u *model.User, p *model.Patient) error {
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

	p.UserID = u.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO patients (id, user_id, date_of_birth, gender, address, emergency_contact, blood_type, medical_history, allergies)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 RETURNING created_at`,
		p.ID, p.UserID, p.DateOfBirth, p.Gender, p.Address, p.EmergencyContact,
		p.BloodType, p.MedicalHistory, p.Allergies,
	).Scan(&p.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) ListPatients(ctx context.Context) ([]model.PatientRow, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT p.id, p.user_id, p.date_of_birth, p.gender, p.address, p.emergency_contact,
		        p.blood_type, p.medical_history, p.allergies, p.created_at,
		        u.first_name, u.last_name, u.email, u.phone
		 FROM patients p
		 JOIN users u ON p.user_id = u.id
		 ORDER BY u.first_name, u.last_name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.PatientRow{}
	for rows.Next() {
		var p model.PatientRow
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.DateOfBirth, &p.Gender, &p.Address, &p.EmergencyContact,
			&p.BloodType, &p.MedicalHistory, &p.Allergies, &p.CreatedAt,
			&p.FirstName, &p.LastName, &p.Email, &p.Phone,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeletePatient removes the profile and its owning account together. A
// missing id is a no-op, not an error.
func (s *Store) DeletePatient(ctx context.Context, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var userID string
	err = tx.QueryRow(ctx,
		`DELETE FROM patients WHERE id = $1 RETURNING user_id`, id,
	).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
