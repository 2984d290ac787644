package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"clinic-scheduling-api/internal/config"
	"clinic-scheduling-api/internal/middleware"
	"clinic-scheduling-api/internal/model"
	"clinic-scheduling-api/internal/store"
)

type Handler struct {
	store *store.Store
	cfg   config.Config
}

func New(st *store.Store, cfg config.Config) *Handler {
	return &Handler{store: st, cfg: cfg}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	rl := middleware.NewRateLimiter(5, 10)
	r.Route("/auth", func(r chi.Router) {
		r.Use(middleware.RateLimit(rl))
		r.Post("/register", h.handleRegister)
		r.Post("/login", h.handleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(h.cfg.JWTSecret))

		r.Get("/appointments", h.handleListAppointments)
		r.Post("/appointments", h.handleCreateAppointment)
		r.Delete("/appointments/{id}", h.handleDeleteAppointment)

		r.Get("/patients", h.handleListPatients)
		r.With(middleware.RequireRole(model.RoleAdmin, model.RoleDoctor)).Post("/patients", h.handleCreatePatient)
		r.With(middleware.RequireRole(model.RoleAdmin)).Delete("/patients/{id}", h.handleDeletePatient)

		r.Get("/doctors", h.handleListDoctors)
		r.With(middleware.RequireRole(model.RoleAdmin)).Post("/doctors", h.handleCreateDoctor)
		r.With(middleware.RequireRole(model.RoleAdmin)).Delete("/doctors/{id}", h.handleDeleteDoctor)

		r.Get("/dashboard/stats", h.handleDashboardStats)

		// reports re-expose the list projections unchanged for export tooling
		r.Route("/reports", func(r chi.Router) {
			r.Get("/patients", h.handleListPatients)
			r.Get("/doctors", h.handleListDoctors)
			r.Get("/appointments", h.handleListAppointments)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// serverError logs the cause and returns a generic message; the underlying
// error text never reaches the client.
func serverError(w http.ResponseWriter, op string, err error) {
	log.Printf("%s: %v", op, err)
	writeMessage(w, http.StatusInternalServerError, "Server error")
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
