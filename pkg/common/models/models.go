package models

import (
	"time"

	"github.com/carepath-ai/readmission/pkg/risk"
)

// Event is the envelope published on the event bus for every completed
// assessment.
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Source    string                 `json:"source"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]string      `json:"metadata,omitempty"`
}

// EventAssessmentCompleted is emitted once per persisted assessment.
const EventAssessmentCompleted = "assessment.completed"

// AssessmentRequest is the inbound payload for a risk assessment. The
// patient identifier is opaque to the engine; it exists for storage and
// retrieval only.
type AssessmentRequest struct {
	PatientID    string               `json:"patient_id"`
	ModelVersion string               `json:"model_version,omitempty"`
	Features     risk.PatientFeatures `json:"features"`
}

// AssessmentResponse wraps the engine output with the identity and
// provenance assigned by the persistence layer.
type AssessmentResponse struct {
	AssessmentID string          `json:"assessment_id"`
	PatientID    string          `json:"patient_id"`
	ModelVersion string          `json:"model_version"`
	Result       risk.Assessment `json:"result"`
	CreatedAt    time.Time       `json:"created_at"`
}

// SurvivalCurveResponse is the analytics payload for the baseline curve.
type SurvivalCurveResponse struct {
	ModelVersion string            `json:"model_version"`
	Shape        float64           `json:"shape"`
	Scale        float64           `json:"scale"`
	Points       []risk.CurvePoint `json:"points"`
}

// CompetingRisksResponse reports the population decomposition at a horizon.
type CompetingRisksResponse struct {
	Days          float64            `json:"days"`
	Decomposition risk.Decomposition `json:"decomposition"`
}

// CategorySummary reports running assessment counts per triage category.
type CategorySummary struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

// ModelVersionInfo describes one registered coefficient set.
type ModelVersionInfo struct {
	Name    string  `json:"name"`
	Shape   float64 `json:"shape"`
	Scale   float64 `json:"scale"`
	Default bool    `json:"default"`
}
