package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

// AssessmentRepository defines the interface for risk assessment persistence
type AssessmentRepository interface {
	CreateAssessment(ctx context.Context, assessment entity.RiskAssessment) (*entity.RiskAssessment, error)
	GetLatestAssessment(ctx context.Context, patientID string) (*entity.RiskAssessment, error)
	ListAssessments(ctx context.Context, patientID string, limit int) ([]entity.RiskAssessment, error)
}

var _ AssessmentRepository = &AssessmentPostgres{}

// AssessmentPostgres implements AssessmentRepository using PostgreSQL
type AssessmentPostgres struct {
	db *pgxpool.Pool
}

func NewAssessmentPostgres(db *pgxpool.Pool) *AssessmentPostgres {
	return &AssessmentPostgres{db: db}
}

const assessmentColumns = `id, patient_id, vital_id, risk_level, warnings, recommendations, interpretation, assessed_at`

func scanAssessment(row pgx.Row) (*entity.RiskAssessment, error) {
	var (
		a                   entity.RiskAssessment
		warningsJSON        []byte
		recommendationsJSON []byte
	)
	err := row.Scan(
		&a.ID, &a.PatientID, &a.VitalID, &a.Level,
		&warningsJSON, &recommendationsJSON, &a.Interpretation, &a.AssessedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(warningsJSON, &a.Warnings); err != nil {
		return nil, fmt.Errorf("decode warnings: %w", err)
	}
	if err := json.Unmarshal(recommendationsJSON, &a.Recommendations); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	return &a, nil
}

func (r *AssessmentPostgres) CreateAssessment(ctx context.Context, assessment entity.RiskAssessment) (*entity.RiskAssessment, error) {
	warningsJSON, err := json.Marshal(assessment.Warnings)
	if err != nil {
		return nil, fmt.Errorf("encode warnings: %w", err)
	}
	recommendationsJSON, err := json.Marshal(assessment.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("encode recommendations: %w", err)
	}

	query := `
		INSERT INTO risk_assessments (patient_id, vital_id, risk_level, warnings, recommendations, interpretation)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + assessmentColumns

	created, err := scanAssessment(r.db.QueryRow(ctx, query,
		assessment.PatientID, assessment.VitalID, assessment.Level,
		warningsJSON, recommendationsJSON, assessment.Interpretation,
	))
	if err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}

	return created, nil
}

func (r *AssessmentPostgres) GetLatestAssessment(ctx context.Context, patientID string) (*entity.RiskAssessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM risk_assessments WHERE patient_id = $1 ORDER BY assessed_at DESC LIMIT 1`

	assessment, err := scanAssessment(r.db.QueryRow(ctx, query, patientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("get latest assessment: %w", err)
	}

	return assessment, nil
}

func (r *AssessmentPostgres) ListAssessments(ctx context.Context, patientID string, limit int) ([]entity.RiskAssessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM risk_assessments WHERE patient_id = $1 ORDER BY assessed_at DESC LIMIT $2`

	rows, err := r.db.Query(ctx, query, patientID, limit)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var assessments []entity.RiskAssessment
	for rows.Next() {
		assessment, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		assessments = append(assessments, *assessment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assessments: %w", err)
	}

	return assessments, nil
}
