package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"clinic-scheduling-api/internal/auth"
	"clinic-scheduling-api/internal/model"
	"clinic-scheduling-api/internal/store"
)

type createDoctorRequest struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Specialization  string  `json:"specialization"`
	LicenseNumber   string  `json:"licenseNumber"`
	Experience      int     `json:"experience"`
	Qualification   string  `json:"qualification"`
	ConsultationFee float64 `json:"consultationFee"`
}

func (h *Handler) handleCreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req createDoctorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Specialization == "" || req.LicenseNumber == "" {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.Experience < 0 || req.ConsultationFee < 0 {
		writeMessage(w, http.StatusBadRequest, "Experience and consultation fee must be non-negative")
		return
	}

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
		Role:         model.RoleDoctor,
	}
	d := &model.Doctor{
		ID:              uuid.New().String(),
		Specialization:  req.Specialization,
		LicenseNumber:   req.LicenseNumber,
		Experience:      req.Experience,
		Qualification:   optional(req.Qualification),
		ConsultationFee: req.ConsultationFee,
	}

	if err := h.store.CreateDoctor(r.Context(), u, d); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeMessage(w, http.StatusBadRequest, "User already exists")
			return
		}
		serverError(w, "create doctor", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"doctor":  d,
	})
}

func (h *Handler) handleListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.store.ListDoctors(r.Context())
	if err != nil {
		serverError(w, "list doctors", err)
		return
	}
	writeJSON(w, http.StatusOK, doctors)
}

func (h *Handler) handleDeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteDoctor(r.Context(), id); err != nil {
		serverError(w, "delete doctor", err)
		return
	}
	writeMessage(w, http.StatusOK, "Doctor deleted successfully")
}
