package handler

import "net/http"

func (h *Handler) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.DashboardStats(r.Context())
	if err != nil {
		serverError(w, "dashboard stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
