package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

// VitalsRepository defines the interface for vitals persistence
type VitalsRepository interface {
	CreateReading(ctx context.Context, reading entity.VitalsReading) (*entity.VitalsReading, error)
	GetLatestReading(ctx context.Context, patientID string) (*entity.VitalsReading, error)
	ListReadings(ctx context.Context, patientID string, limit int) ([]entity.VitalsReading, error)
}

var _ VitalsRepository = &VitalsPostgres{}

// VitalsPostgres implements VitalsRepository using PostgreSQL
type VitalsPostgres struct {
	db *pgxpool.Pool
}

func NewVitalsPostgres(db *pgxpool.Pool) *VitalsPostgres {
	return &VitalsPostgres{db: db}
}

const vitalsColumns = `id, patient_id, bp_systolic, bp_diastolic, heart_rate, glucose, hemoglobin, weight, recorded_at`

func scanReading(row pgx.Row) (*entity.VitalsReading, error) {
	var v entity.VitalsReading
	err := row.Scan(
		&v.ID, &v.PatientID, &v.BPSystolic, &v.BPDiastolic, &v.HeartRate,
		&v.Glucose, &v.Hemoglobin, &v.Weight, &v.RecordedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VitalsPostgres) CreateReading(ctx context.Context, reading entity.VitalsReading) (*entity.VitalsReading, error) {
	query := `
		INSERT INTO vitals (patient_id, bp_systolic, bp_diastolic, heart_rate, glucose, hemoglobin, weight)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + vitalsColumns

	created, err := scanReading(r.db.QueryRow(ctx, query,
		reading.PatientID, reading.BPSystolic, reading.BPDiastolic,
		reading.HeartRate, reading.Glucose, reading.Hemoglobin, reading.Weight,
	))
	if err != nil {
		return nil, fmt.Errorf("create vitals reading: %w", err)
	}

	return created, nil
}

func (r *VitalsPostgres) GetLatestReading(ctx context.Context, patientID string) (*entity.VitalsReading, error) {
	query := `SELECT ` + vitalsColumns + ` FROM vitals WHERE patient_id = $1 ORDER BY recorded_at DESC LIMIT 1`

	reading, err := scanReading(r.db.QueryRow(ctx, query, patientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrNoVitalsRecorded
		}
		return nil, fmt.Errorf("get latest reading: %w", err)
	}

	return reading, nil
}

func (r *VitalsPostgres) ListReadings(ctx context.Context, patientID string, limit int) ([]entity.VitalsReading, error) {
	query := `SELECT ` + vitalsColumns + ` FROM vitals WHERE patient_id = $1 ORDER BY recorded_at DESC LIMIT $2`

	rows, err := r.db.Query(ctx, query, patientID, limit)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	defer rows.Close()

	var readings []entity.VitalsReading
	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		readings = append(readings, *reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate readings: %w", err)
	}

	return readings, nil
}
