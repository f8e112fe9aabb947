package assessment

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/carepath-ai/readmission/pkg/common/models"
	"github.com/carepath-ai/readmission/pkg/registry"
	"github.com/carepath-ai/readmission/pkg/risk"
)

func newValidationService(t *testing.T) *Service {
	t.Helper()
	reg, err := registry.Load("")
	if err != nil {
		t.Fatalf("failed to load registry: %v", err)
	}
	// nil repo/producer: these tests only cover the rejection path, which
	// must trip before persistence is touched
	return NewService(reg, nil, nil)
}

func TestAssessRejectsMissingPatientID(t *testing.T) {
	svc := newValidationService(t)
	_, err := svc.Assess(context.Background(), models.AssessmentRequest{
		Features: risk.PatientFeatures{Age: 65, SocioeconomicIndex: 50},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAssessRejectsMalformedFeatures(t *testing.T) {
	svc := newValidationService(t)
	_, err := svc.Assess(context.Background(), models.AssessmentRequest{
		PatientID: "P0001",
		Features:  risk.PatientFeatures{Age: math.NaN(), SocioeconomicIndex: 50},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAssessRejectsUnknownModelVersion(t *testing.T) {
	svc := newValidationService(t)
	_, err := svc.Assess(context.Background(), models.AssessmentRequest{
		PatientID:    "P0001",
		ModelVersion: "1999.1",
		Features:     risk.PatientFeatures{Age: 65, SocioeconomicIndex: 50},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestHistoryRequiresPatientID(t *testing.T) {
	svc := newValidationService(t)
	if _, err := svc.History(context.Background(), "", 10); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestModelVersionsIncludeDefault(t *testing.T) {
	svc := newValidationService(t)
	infos := svc.ModelVersions()
	if len(infos) != 1 {
		t.Fatalf("expected one registered version, got %d", len(infos))
	}
	if infos[0].Name != registry.DefaultVersionName || !infos[0].Default {
		t.Fatalf("unexpected version info: %+v", infos[0])
	}
}
