package report

import (
	"context"
	"errors"
	"os"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/matcare/pregnancy-backend/internal/entity"
	"github.com/matcare/pregnancy-backend/internal/pkg/validator"
	domainreport "github.com/matcare/pregnancy-backend/internal/report"
	"github.com/matcare/pregnancy-backend/internal/repository"
)

const conversationScanLimit = 50

// ReportUsecase implements report generation and retrieval logic
type ReportUsecase struct {
	reportRepo       repository.ReportRepository
	vitalsRepo       repository.VitalsRepository
	assessmentRepo   repository.AssessmentRepository
	conversationRepo repository.ConversationRepository
	patients         PatientAccess
	generator        DocumentGenerator
	validator        *validator.Validator
	logger           *zap.Logger
}

// NewUsecase creates a new report use case
func NewUsecase(
	reportRepo repository.ReportRepository,
	vitalsRepo repository.VitalsRepository,
	assessmentRepo repository.AssessmentRepository,
	conversationRepo repository.ConversationRepository,
	patients PatientAccess,
	generator DocumentGenerator,
	validator *validator.Validator,
	logger *zap.Logger,
) *ReportUsecase {
	return &ReportUsecase{
		reportRepo:       reportRepo,
		vitalsRepo:       vitalsRepo,
		assessmentRepo:   assessmentRepo,
		conversationRepo: conversationRepo,
		patients:         patients,
		generator:        generator,
		validator:        validator,
		logger:           logger,
	}
}

// GenerateReport gathers the patient's latest vitals, assessment and
// recent conversations, renders the report file and persists its
// metadata. Missing history is not an error: the report renders with
// placeholders.
func (uc *ReportUsecase) GenerateReport(ctx context.Context, userID string, req *entity.GenerateReportRequest) (*entity.Report, error) {
	if err := uc.validator.ValidateGenerateReport(req); err != nil {
		return nil, err
	}

	patient, err := uc.patients.GetPatient(ctx, userID, req.PatientID)
	if err != nil {
		return nil, err
	}

	latestVitals, err := uc.vitalsRepo.GetLatestReading(ctx, req.PatientID)
	if err != nil && !errors.Is(err, entity.ErrNoVitalsRecorded) {
		return nil, err
	}

	latestAssessment, err := uc.assessmentRepo.GetLatestAssessment(ctx, req.PatientID)
	if err != nil && !errors.Is(err, entity.ErrAssessmentNotFound) {
		return nil, err
	}

	conversations, err := uc.conversationRepo.ListConversations(ctx, req.PatientID, conversationScanLimit)
	if err != nil {
		return nil, err
	}

	out, err := uc.generator.Generate(ctx, domainreport.Input{
		Patient:          *patient,
		LatestVitals:     latestVitals,
		LatestAssessment: latestAssessment,
		Conversations:    conversations,
		Format:           req.Format,
	})
	if err != nil {
		return nil, err
	}

	report, err := uc.reportRepo.CreateReport(ctx, entity.Report{
		PatientID: req.PatientID,
		Path:      out.Path,
		Type:      entity.ReportTypePregnancyAssessment,
		Metadata:  out.Metadata,
	})
	if err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "report persisted",
		zap.String("patient_id", req.PatientID),
		zap.String("report_id", report.ID),
	)

	return report, nil
}

func (uc *ReportUsecase) ListReports(ctx context.Context, userID, patientID string) ([]entity.Report, error) {
	if _, err := uc.patients.GetPatient(ctx, userID, patientID); err != nil {
		return nil, err
	}
	return uc.reportRepo.ListReports(ctx, patientID)
}

// GetReportFile resolves a report for download. The metadata row may
// outlive the file on disk; that case maps to ErrReportFileMissing.
func (uc *ReportUsecase) GetReportFile(ctx context.Context, userID, reportID string) (*entity.Report, error) {
	report, err := uc.reportRepo.GetReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.patients.GetPatient(ctx, userID, report.PatientID); err != nil {
		return nil, entity.ErrReportNotFound
	}

	if _, err := os.Stat(report.Path); err != nil {
		return nil, entity.ErrReportFileMissing
	}

	return report, nil
}
