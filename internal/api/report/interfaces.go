package report

import (
	"context"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

type ReportUsecase interface {
	GenerateReport(ctx context.Context, userID string, req *entity.GenerateReportRequest) (*entity.Report, error)
	ListReports(ctx context.Context, userID, patientID string) ([]entity.Report, error)
	GetReportFile(ctx context.Context, userID, reportID string) (*entity.Report, error)
}
