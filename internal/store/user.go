package store

import (
	"context"

	"clinic-scheduling-api/internal/model"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	err := insertUser(ctx, s.pool, u)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func insertUser(ctx context.Context, q querier, u *model.User) error {
	_, err := q.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, first_name, last_name, phone, role)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Phone, u.Role,
	)
	return err
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, first_name, last_name, phone, role, is_active, created_at, updated_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Phone,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}
