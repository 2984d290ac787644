package store

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type DashboardStats struct {
	TotalPatients     int64 `json:"totalPatients"`
	TotalDoctors      int64 `json:"totalDoctors"`
	TotalAppointments int64 `json:"totalAppointments"`
	TodayAppointments int64 `json:"todayAppointments"`
}

// DashboardStats runs the four counts concurrently. They are not taken in a
// single snapshot and may disagree under concurrent writes; that is fine for
// a display-only aggregate. Any failed count fails the whole aggregate.
func (s *Store) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	st := &DashboardStats{}
	g, ctx := errgroup.WithContext(ctx)

	count := func(dst *int64, q string) func() error {
		return func() error {
			return s.pool.QueryRow(ctx, q).Scan(dst)
		}
	}

	g.Go(count(&st.TotalPatients, `SELECT COUNT(*) FROM patients`))
	g.Go(count(&st.TotalDoctors, `SELECT COUNT(*) FROM doctors`))
	g.Go(count(&st.TotalAppointments, `SELECT COUNT(*) FROM appointments`))
	g.Go(count(&st.TodayAppointments,
		`SELECT COUNT(*) FROM appointments WHERE date_time::date = CURRENT_DATE`))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return st, nil
}
