package assessment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/carepath-ai/readmission/pkg/common/logger"
	"github.com/carepath-ai/readmission/pkg/common/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/assessments", h.handleCreateAssessment).Methods(http.MethodPost)
	r.HandleFunc("/assessments", h.handleListRecent).Methods(http.MethodGet)
	r.HandleFunc("/assessments/{id}", h.handleGetAssessment).Methods(http.MethodGet)
	r.HandleFunc("/patients/{id}/assessments", h.handlePatientHistory).Methods(http.MethodGet)
	r.HandleFunc("/models", h.handleListModels).Methods(http.MethodGet)
}

func (h *Handler) handleCreateAssessment(w http.ResponseWriter, r *http.Request) {
	var req models.AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Assess(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		logger.Log.WithError(err).Error("failed to create assessment")
		http.Error(w, "failed to create assessment", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleListRecent(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 50)
	items, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		logger.Log.WithError(err).Error("failed to list assessments")
		http.Error(w, "failed to list assessments", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid assessment id", http.StatusBadRequest)
		return
	}
	stored, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "assessment not found", http.StatusNotFound)
			return
		}
		logger.Log.WithError(err).Error("failed to get assessment")
		http.Error(w, "failed to get assessment", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func (h *Handler) handlePatientHistory(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["id"]
	limit := parseLimit(r, 50)
	items, err := h.service.History(r.Context(), patientID, limit)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Log.WithError(err).Error("failed to list patient assessments")
		http.Error(w, "failed to list patient assessments", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) handleListModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": h.service.ModelVersions()})
}

func parseLimit(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
