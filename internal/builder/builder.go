package builder

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/matcare/pregnancy-backend/internal/api"
	authapi "github.com/matcare/pregnancy-backend/internal/api/auth"
	chatapi "github.com/matcare/pregnancy-backend/internal/api/chat"
	patientapi "github.com/matcare/pregnancy-backend/internal/api/patient"
	reportapi "github.com/matcare/pregnancy-backend/internal/api/report"
	vitalsapi "github.com/matcare/pregnancy-backend/internal/api/vitals"
	"github.com/matcare/pregnancy-backend/internal/config"
	"github.com/matcare/pregnancy-backend/internal/entity"
	"github.com/matcare/pregnancy-backend/internal/integration/embedder"
	"github.com/matcare/pregnancy-backend/internal/integration/llm"
	"github.com/matcare/pregnancy-backend/internal/pkg/token"
	"github.com/matcare/pregnancy-backend/internal/pkg/validator"
	"github.com/matcare/pregnancy-backend/internal/rag"
	domainreport "github.com/matcare/pregnancy-backend/internal/report"
	"github.com/matcare/pregnancy-backend/internal/repository"
	"github.com/matcare/pregnancy-backend/internal/risk"
	"github.com/matcare/pregnancy-backend/internal/usecase/auth"
	"github.com/matcare/pregnancy-backend/internal/usecase/chat"
	"github.com/matcare/pregnancy-backend/internal/usecase/patient"
	reportuc "github.com/matcare/pregnancy-backend/internal/usecase/report"
	"github.com/matcare/pregnancy-backend/internal/usecase/vitals"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserPostgres(db)
	patientRepo := repository.NewPatientPostgres(db)
	vitalsRepo := repository.NewVitalsPostgres(db)
	assessmentRepo := repository.NewAssessmentPostgres(db)
	conversationRepo := repository.NewConversationPostgres(db)
	reportRepo := repository.NewReportPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize external model connectors (with mock support)
	var embedderConnector rag.Embedder
	var llmConnector rag.Generator

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		embedderConnector = embedder.NewMockConnector(logger)
		llmConnector = llm.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		embedderConnector = embedder.NewConnector(cfg.EmbedderConnectorCfg, logger)
		llmConnector = llm.NewConnector(cfg.LLMConnectorCfg, logger)
	}

	// The retrieval pipeline fails fast when the vector store has not
	// been built yet, so a misconfigured deployment is caught here and
	// not on the first chat request.
	pipeline, err := rag.NewPipeline(cfg.RAGCfg, embedderConnector, llmConnector)
	if err != nil {
		db.Close()
		if errors.Is(err, entity.ErrVectorStoreMissing) {
			return nil, fmt.Errorf("%w (run the ingest command against %s)", err, cfg.RAGCfg.SourceDir)
		}
		return nil, fmt.Errorf("initialize retrieval pipeline: %w", err)
	}
	logger.Info("Retrieval pipeline initialized", zap.String("store_path", cfg.RAGCfg.VectorStorePath))

	// Initialize the risk evaluator; broken thresholds are fatal
	evaluator, err := risk.NewEvaluator(cfg.RiskCfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	// Initialize validators and token manager
	reqValidator := validator.NewValidator()
	tokens := token.NewManager(cfg.AuthCfg)

	// Initialize use cases
	authUC := auth.NewUsecase(userRepo, tokens, reqValidator, logger)
	patientUC := patient.NewUsecase(patientRepo, reqValidator, logger)
	vitalsUC := vitals.NewUsecase(vitalsRepo, assessmentRepo, patientUC, evaluator, reqValidator, logger)
	chatUC := chat.NewUsecase(conversationRepo, patientUC, pipeline, reqValidator, logger)
	reportUC := reportuc.NewUsecase(
		reportRepo,
		vitalsRepo,
		assessmentRepo,
		conversationRepo,
		patientUC,
		domainreport.NewGenerator(cfg.ReportCfg),
		reqValidator,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup router
	router := api.SetupRouter(api.RouterDeps{
		AuthHandler:    authapi.NewHandler(authUC),
		PatientHandler: patientapi.NewHandler(patientUC),
		VitalsHandler:  vitalsapi.NewHandler(vitalsUC),
		ChatHandler:    chatapi.NewHandler(chatUC),
		ReportHandler:  reportapi.NewHandler(reportUC),
		Tokens:         tokens,
		UserRepo:       userRepo,
		UserCacheTTL:   cfg.AuthCfg.UserCacheTTL,
		Logger:         logger,
	})
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:   server,
		db:       db,
		pipeline: pipeline,
		logger:   logger,
	}, nil
}
