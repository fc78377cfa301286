package report

import "github.com/matcare/pregnancy-backend/internal/entity"

func toReportResponse(report *entity.Report) *entity.ReportResponse {
	return &entity.ReportResponse{
		ReportID:    report.ID,
		ReportPath:  report.Path,
		ReportType:  report.Type,
		Metadata:    report.Metadata,
		GeneratedAt: report.GeneratedAt,
	}
}
