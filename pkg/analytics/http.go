package analytics

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/carepath-ai/readmission/pkg/common/logger"
	"github.com/carepath-ai/readmission/pkg/risk"
	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/analytics/survival-curve", h.handleSurvivalCurve).Methods(http.MethodGet)
	r.HandleFunc("/analytics/competing-risks", h.handleCompetingRisks).Methods(http.MethodGet)
	r.HandleFunc("/analytics/categories", h.handleCategorySummary).Methods(http.MethodGet)
}

func (h *Handler) handleSurvivalCurve(w http.ResponseWriter, r *http.Request) {
	days := 90
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "days must be an integer", http.StatusBadRequest)
			return
		}
		days = parsed
	}
	version := r.URL.Query().Get("version")

	resp, err := h.service.SurvivalCurve(r.Context(), days, version)
	if err != nil {
		if errors.Is(err, risk.ErrInvalidParameter) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Log.WithError(err).Error("failed to compute survival curve")
		http.Error(w, "failed to compute survival curve", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCompetingRisks(w http.ResponseWriter, r *http.Request) {
	days := 30.0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "days must be numeric", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	resp, err := h.service.CompetingRisksAt(days)
	if err != nil {
		if errors.Is(err, risk.ErrInvalidParameter) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Log.WithError(err).Error("failed to decompose competing risks")
		http.Error(w, "failed to decompose competing risks", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCategorySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.CategorySummary(r.Context())
	if err != nil {
		logger.Log.WithError(err).Error("failed to read category summary")
		http.Error(w, "failed to read category summary", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
