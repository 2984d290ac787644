package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"clinic-scheduling-api/internal/auth"
	"clinic-scheduling-api/internal/model"
	"clinic-scheduling-api/internal/store"
)

type createPatientRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	DateOfBirth      string `json:"dateOfBirth"`
	Gender           string `json:"gender"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
	BloodType        string `json:"bloodType"`
	MedicalHistory   string `json:"medicalHistory"`
	Allergies        string `json:"allergies"`
}

func (h *Handler) handleCreatePatient(w http.ResponseWriter, r *http.Request) {
	var req createPatientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.DateOfBirth == "" || req.Gender == "" {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid date of birth")
		return
	}

	// operator-created accounts get the documented placeholder password
	hash, err := auth.HashPassword(h.cfg.DefaultProfilePassword)
	if err != nil {
		serverError(w, "hash password", err)
		return
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        optional(req.Phone),
		Role:         model.RolePatient,
	}
	p := &model.Patient{
		ID:               uuid.New().String(),
		DateOfBirth:      dob,
		Gender:           req.Gender,
		Address:          optional(req.Address),
		EmergencyContact: optional(req.EmergencyContact),
		BloodType:        optional(req.BloodType),
		MedicalHistory:   optional(req.MedicalHistory),
		Allergies:        optional(req.Allergies),
	}

	if err := h.store.CreatePatient(r.Context(), u, p); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		serverError(w, "create patient", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"patient": p,
	})
}

func (h *Handler) handleListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.store.ListPatients(r.Context())
	if err != nil {
		serverError(w, "list patients", err)
		return
	}
	writeJSON(w, http.StatusOK, patients)
}

func (h *Handler) handleDeletePatient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeletePatient(r.Context(), id); err != nil {
		serverError(w, "delete patient", err)
		return
	}
	writeMessage(w, http.StatusOK, "Patient deleted successfully")
}
