package assessment

import (
	"context"
	"errors"
	"fmt"

	"github.com/carepath-ai/readmission/pkg/common/kafka"
	"github.com/carepath-ai/readmission/pkg/common/logger"
	"github.com/carepath-ai/readmission/pkg/common/models"
	"github.com/carepath-ai/readmission/pkg/observability/metrics"
	"github.com/carepath-ai/readmission/pkg/registry"
	"github.com/google/uuid"
)

// ErrValidation marks requests refused before the engine runs. Handlers map
// it to a client error; everything else is a server fault.
var ErrValidation = errors.New("validation failed")

// Service ties the pure risk engine to persistence and the event bus.
type Service struct {
	registry *registry.Registry
	repo     *Repository
	producer *kafka.Producer
}

func NewService(reg *registry.Registry, repo *Repository, producer *kafka.Producer) *Service {
	return &Service{registry: reg, repo: repo, producer: producer}
}

// Assess validates the request, runs the engine for the requested model
// version, persists the result, and publishes an assessment.completed
// event. Publication failures are logged but do not fail the assessment.
func (s *Service) Assess(ctx context.Context, req models.AssessmentRequest) (models.AssessmentResponse, error) {
	if req.PatientID == "" {
		metrics.ObserveRejected()
		return models.AssessmentResponse{}, fmt.Errorf("%w: patient_id is required", ErrValidation)
	}
	if err := req.Features.Validate(); err != nil {
		metrics.ObserveRejected()
		return models.AssessmentResponse{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	engine, version, err := s.registry.Engine(req.ModelVersion)
	if err != nil {
		metrics.ObserveRejected()
		return models.AssessmentResponse{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	result, err := engine.Assess(req.Features)
	if err != nil {
		metrics.ObserveRejected()
		return models.AssessmentResponse{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	id, createdAt, err := s.repo.Record(ctx, req.PatientID, version, req.Features, result)
	if err != nil {
		return models.AssessmentResponse{}, fmt.Errorf("persist assessment: %w", err)
	}

	metrics.ObserveAssessment(string(result.Category))
	s.publishCompleted(ctx, id.String(), req.PatientID, version, result.Risk30Day, string(result.Category))

	logger.Log.WithFields(map[string]interface{}{
		"assessment_id": id.String(),
		"patient_id":    req.PatientID,
		"model_version": version,
		"category":      result.Category,
	}).Info("Assessment completed")

	return models.AssessmentResponse{
		AssessmentID: id.String(),
		PatientID:    req.PatientID,
		ModelVersion: version,
		Result:       result,
		CreatedAt:    createdAt,
	}, nil
}

func (s *Service) publishCompleted(ctx context.Context, id, patientID, version string, risk30 float64, category string) {
	if s.producer == nil {
		return
	}
	err := s.producer.PublishEvent(ctx, models.EventAssessmentCompleted, "risk-service", map[string]interface{}{
		"assessment_id": id,
		"patient_id":    patientID,
		"model_version": version,
		"risk_30_day":   risk30,
		"category":      category,
	})
	if err != nil {
		metrics.ObservePublishFailure()
		logger.Log.WithError(err).Warn("Failed to publish assessment event")
	}
}

// Get fetches one stored assessment.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (StoredAssessment, error) {
	return s.repo.Get(ctx, id)
}

// Recent lists the latest assessments across patients.
func (s *Service) Recent(ctx context.Context, limit int) ([]StoredAssessment, error) {
	return s.repo.Recent(ctx, limit)
}

// History lists one patient's assessments, newest first.
func (s *Service) History(ctx context.Context, patientID string, limit int) ([]StoredAssessment, error) {
	if patientID == "" {
		return nil, fmt.Errorf("%w: patient id is required", ErrValidation)
	}
	return s.repo.ListByPatient(ctx, patientID, limit)
}

// ModelVersions describes the registered coefficient sets.
func (s *Service) ModelVersions() []models.ModelVersionInfo {
	names := s.registry.Versions()
	infos := make([]models.ModelVersionInfo, 0, len(names))
	for _, name := range names {
		engine, _, err := s.registry.Engine(name)
		if err != nil {
			continue
		}
		coeffs := engine.Coefficients()
		infos = append(infos, models.ModelVersionInfo{
			Name:    name,
			Shape:   coeffs.Shape,
			Scale:   coeffs.Scale,
			Default: name == s.registry.DefaultVersion(),
		})
	}
	return infos
}
