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

// ReportRepository defines the interface for report metadata persistence
type ReportRepository interface {
	CreateReport(ctx context.Context, report entity.Report) (*entity.Report, error)
	GetReportByID(ctx context.Context, id string) (*entity.Report, error)
	ListReports(ctx context.Context, patientID string) ([]entity.Report, error)
}

var _ ReportRepository = &ReportPostgres{}

// ReportPostgres implements ReportRepository using PostgreSQL
type ReportPostgres struct {
	db *pgxpool.Pool
}

func NewReportPostgres(db *pgxpool.Pool) *ReportPostgres {
	return &ReportPostgres{db: db}
}

const reportColumns = `id, patient_id, report_path, report_type, metadata, generated_at`

func scanReport(row pgx.Row) (*entity.Report, error) {
	var (
		rep          entity.Report
		metadataJSON []byte
	)
	err := row.Scan(&rep.ID, &rep.PatientID, &rep.Path, &rep.Type, &metadataJSON, &rep.GeneratedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(metadataJSON, &rep.Metadata); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return &rep, nil
}

func (r *ReportPostgres) CreateReport(ctx context.Context, report entity.Report) (*entity.Report, error) {
	metadataJSON, err := json.Marshal(report.Metadata)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}

	query := `
		INSERT INTO reports (patient_id, report_path, report_type, metadata)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + reportColumns

	created, err := scanReport(r.db.QueryRow(ctx, query,
		report.PatientID, report.Path, report.Type, metadataJSON,
	))
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	return created, nil
}

func (r *ReportPostgres) GetReportByID(ctx context.Context, id string) (*entity.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`

	report, err := scanReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrReportNotFound
		}
		return nil, fmt.Errorf("get report by id: %w", err)
	}

	return report, nil
}

func (r *ReportPostgres) ListReports(ctx context.Context, patientID string) ([]entity.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE patient_id = $1 ORDER BY generated_at DESC`

	rows, err := r.db.Query(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var reports []entity.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}

	return reports, nil
}
