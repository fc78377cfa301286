package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

// PatientRepository defines the interface for patient persistence
type PatientRepository interface {
	CreatePatient(ctx context.Context, patient entity.Patient) (*entity.Patient, error)
	GetPatientByID(ctx context.Context, id string) (*entity.Patient, error)
	ListPatientsByUser(ctx context.Context, userID string) ([]entity.Patient, error)
	UpdatePatient(ctx context.Context, patient entity.Patient) (*entity.Patient, error)
	DeactivatePatient(ctx context.Context, id string) error
}

var _ PatientRepository = &PatientPostgres{}

// PatientPostgres implements PatientRepository using PostgreSQL
type PatientPostgres struct {
	db *pgxpool.Pool
}

func NewPatientPostgres(db *pgxpool.Pool) *PatientPostgres {
	return &PatientPostgres{db: db}
}

const patientColumns = `id, user_id, name, age, blood_group, gestational_week, due_date, medical_history, is_active, created_at, updated_at`

func scanPatient(row pgx.Row) (*entity.Patient, error) {
	var p entity.Patient
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Age, &p.BloodGroup, &p.GestationalWeek,
		&p.DueDate, &p.MedicalHistory, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PatientPostgres) CreatePatient(ctx context.Context, patient entity.Patient) (*entity.Patient, error) {
	query := `
		INSERT INTO patients (user_id, name, age, blood_group, gestational_week, due_date, medical_history)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + patientColumns

	created, err := scanPatient(r.db.QueryRow(ctx, query,
		patient.UserID, patient.Name, patient.Age, patient.BloodGroup,
		patient.GestationalWeek, patient.DueDate, patient.MedicalHistory,
	))
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}

	return created, nil
}

func (r *PatientPostgres) GetPatientByID(ctx context.Context, id string) (*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1 AND is_active`

	patient, err := scanPatient(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient by id: %w", err)
	}

	return patient, nil
}

func (r *PatientPostgres) ListPatientsByUser(ctx context.Context, userID string) ([]entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE user_id = $1 AND is_active ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	var patients []entity.Patient
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		patients = append(patients, *patient)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patients: %w", err)
	}

	return patients, nil
}

func (r *PatientPostgres) UpdatePatient(ctx context.Context, patient entity.Patient) (*entity.Patient, error) {
	query := `
		UPDATE patients
		SET name = $2,
			age = $3,
			blood_group = $4,
			gestational_week = $5,
			due_date = $6,
			medical_history = $7,
			updated_at = now()
		WHERE id = $1 AND is_active
		RETURNING ` + patientColumns

	updated, err := scanPatient(r.db.QueryRow(ctx, query,
		patient.ID, patient.Name, patient.Age, patient.BloodGroup,
		patient.GestationalWeek, patient.DueDate, patient.MedicalHistory,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrPatientNotFound
		}
		return nil, fmt.Errorf("update patient: %w", err)
	}

	return updated, nil
}

// DeactivatePatient soft-deletes a patient. History rows are kept.
func (r *PatientPostgres) DeactivatePatient(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `UPDATE patients SET is_active = FALSE, updated_at = now() WHERE id = $1 AND is_active`, id)
	if err != nil {
		return fmt.Errorf("deactivate patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrPatientNotFound
	}
	return nil
}
