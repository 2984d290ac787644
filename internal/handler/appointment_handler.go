package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"clinic-scheduling-api/internal/model"
)

type createAppointmentRequest struct {
	PatientID string `json:"patientId"`
	DoctorID  string `json:"doctorId"`
	DateTime  string `json:"dateTime"`
	Type      string `json:"type"`
	Duration  int    `json:"duration"`
	Notes     string `json:"notes"`
	Symptoms  string `json:"symptoms"`
}

func (h *Handler) handleCreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req createAppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PatientID == "" || req.DoctorID == "" || req.DateTime == "" || req.Type == "" {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	when, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid date time")
		return
	}
	duration := req.Duration
	if duration <= 0 {
		duration = model.DefaultAppointmentDuration
	}

	// no existence check on the referenced profiles and no overlap check
	// against the doctor's schedule: out of scope, the foreign keys are the
	// only guard
	a := &model.Appointment{
		ID:        uuid.New().String(),
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		DateTime:  when,
		Duration:  duration,
		Type:      req.Type,
		Notes:     optional(req.Notes),
		Symptoms:  optional(req.Symptoms),
		Status:    model.AppointmentStatusScheduled,
	}
	if err := h.store.CreateAppointment(r.Context(), a); err != nil {
		serverError(w, "create appointment", err)
		return
	}

	writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	appts, err := h.store.ListAppointments(r.Context())
	if err != nil {
		serverError(w, "list appointments", err)
		return
	}
	writeJSON(w, http.StatusOK, appts)
}

func (h *Handler) handleDeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteAppointment(r.Context(), id); err != nil {
		serverError(w, "delete appointment", err)
		return
	}
	writeMessage(w, http.StatusOK, "Appointment deleted successfully")
}
