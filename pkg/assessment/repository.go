package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/carepath-ai/readmission/pkg/risk"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// assessmentModel is the persistence shape of one engine result. Identity
// is assigned here; the engine itself never sees it.
type assessmentModel struct {
	ID              uuid.UUID         `gorm:"primaryKey;column:id"`
	PatientID       string            `gorm:"column:patient_id;index"`
	ModelVersion    string            `gorm:"column:model_version"`
	Risk30Day       float64           `gorm:"column:risk_30_day"`
	Risk60Day       float64           `gorm:"column:risk_60_day"`
	Risk90Day       float64           `gorm:"column:risk_90_day"`
	HazardRatio     float64           `gorm:"column:hazard_ratio"`
	Category        string            `gorm:"column:risk_category;index"`
	ConfidenceLower float64           `gorm:"column:confidence_lower"`
	ConfidenceUpper float64           `gorm:"column:confidence_upper"`
	Features        datatypes.JSONMap `gorm:"column:features"`
	CompetingRisks  datatypes.JSONMap `gorm:"column:competing_risks"`
	CarePlan        datatypes.JSON    `gorm:"column:care_plan"`
	CreatedAt       time.Time         `gorm:"column:created_at;index"`
}

func (assessmentModel) TableName() string { return "risk_assessments" }

// Repository stores and retrieves persisted assessments.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&assessmentModel{})
}

// Record persists one assessment and returns its assigned id.
func (r *Repository) Record(ctx context.Context, patientID, modelVersion string, features risk.PatientFeatures, result risk.Assessment) (uuid.UUID, time.Time, error) {
	carePlan, err := json.Marshal(result.CarePlan)
	if err != nil {
		return uuid.Nil, time.Time{}, fmt.Errorf("marshal care plan: %w", err)
	}

	record := assessmentModel{
		ID:              uuid.New(),
		PatientID:       patientID,
		ModelVersion:    modelVersion,
		Risk30Day:       result.Risk30Day,
		Risk60Day:       result.Risk60Day,
		Risk90Day:       result.Risk90Day,
		HazardRatio:     result.HazardRatio,
		Category:        string(result.Category),
		ConfidenceLower: result.ConfidenceLower,
		ConfidenceUpper: result.ConfidenceUpper,
		Features: datatypes.JSONMap{
			"age":                 features.Age,
			"num_comorbidities":   features.NumComorbidities,
			"prior_admissions":    features.PriorAdmissions,
			"diabetes":            features.Diabetes,
			"chf":                 features.CHF,
			"copd":                features.COPD,
			"socioeconomic_index": features.SocioeconomicIndex,
		},
		CompetingRisks: datatypes.JSONMap{
			"readmission": result.CompetingRisks.Readmission,
			"death":       result.CompetingRisks.Death,
			"transfer":    result.CompetingRisks.Transfer,
			"recovery":    result.CompetingRisks.Recovery,
		},
		CarePlan:  datatypes.JSON(carePlan),
		CreatedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return uuid.Nil, time.Time{}, err
	}
	return record.ID, record.CreatedAt, nil
}

// Get returns one stored assessment by id.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (StoredAssessment, error) {
	var record assessmentModel
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return StoredAssessment{}, err
	}
	return toStored(record)
}

// Recent returns the most recent assessments up to limit.
func (r *Repository) Recent(ctx context.Context, limit int) ([]StoredAssessment, error) {
	if limit <= 0 {
		limit = 50
	}
	var records []assessmentModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toStoredSlice(records)
}

// ListByPatient returns a patient's assessment history, newest first.
func (r *Repository) ListByPatient(ctx context.Context, patientID string, limit int) ([]StoredAssessment, error) {
	if limit <= 0 {
		limit = 50
	}
	var records []assessmentModel
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toStoredSlice(records)
}

// StoredAssessment is the read-side projection of a persisted record.
type StoredAssessment struct {
	ID              uuid.UUID          `json:"assessment_id"`
	PatientID       string             `json:"patient_id"`
	ModelVersion    string             `json:"model_version"`
	Risk30Day       float64            `json:"risk_30_day"`
	Risk60Day       float64            `json:"risk_60_day"`
	Risk90Day       float64            `json:"risk_90_day"`
	HazardRatio     float64            `json:"hazard_ratio"`
	Category        string             `json:"risk_category"`
	ConfidenceLower float64            `json:"confidence_lower"`
	ConfidenceUpper float64            `json:"confidence_upper"`
	CompetingRisks  map[string]float64 `json:"competing_risks"`
	CarePlan        []string           `json:"care_plan"`
	CreatedAt       time.Time          `json:"created_at"`
}

func toStored(record assessmentModel) (StoredAssessment, error) {
	var carePlan []string
	if len(record.CarePlan) > 0 {
		if err := json.Unmarshal(record.CarePlan, &carePlan); err != nil {
			return StoredAssessment{}, fmt.Errorf("unmarshal care plan: %w", err)
		}
	}

	competing := make(map[string]float64, len(record.CompetingRisks))
	for key, value := range record.CompetingRisks {
		if f, ok := value.(float64); ok {
			competing[key] = f
		}
	}

	return StoredAssessment{
		ID:              record.ID,
		PatientID:       record.PatientID,
		ModelVersion:    record.ModelVersion,
		Risk30Day:       record.Risk30Day,
		Risk60Day:       record.Risk60Day,
		Risk90Day:       record.Risk90Day,
		HazardRatio:     record.HazardRatio,
		Category:        record.Category,
		ConfidenceLower: record.ConfidenceLower,
		ConfidenceUpper: record.ConfidenceUpper,
		CompetingRisks:  competing,
		CarePlan:        carePlan,
		CreatedAt:       record.CreatedAt,
	}, nil
}

func toStoredSlice(records []assessmentModel) ([]StoredAssessment, error) {
	out := make([]StoredAssessment, 0, len(records))
	for _, record := range records {
		stored, err := toStored(record)
		if err != nil {
			return nil, err
		}
		out = append(out, stored)
	}
	return out, nil
}
