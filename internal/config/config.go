package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	pkgRetry "github.com/matcare/pregnancy-backend/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8000"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	MigrationsPath      string        `env:"MIGRATIONS_PATH" envDefault:"internal/repository/migrations"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// RAG configuration
	RAGCfg RAGConfig `envPrefix:"RAG_"`

	// Risk thresholds
	RiskCfg RiskConfig `envPrefix:"RISK_"`

	// External model service configurations
	EmbedderConnectorCfg EmbedderConnectorConfig `envPrefix:"EMBEDDER_"`
	LLMConnectorCfg      LLMConnectorConfig      `envPrefix:"LLM_"`

	// Auth configuration
	AuthCfg AuthConfig `envPrefix:"AUTH_"`

	// Report configuration
	ReportCfg ReportConfig `envPrefix:"REPORT_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// RAGConfig holds ingestion and retrieval settings
type RAGConfig struct {
	SourceDir       string `env:"SOURCE_DIR" envDefault:"data"`
	VectorStorePath string `env:"VECTOR_STORE_PATH" envDefault:"vectorstore/chunks.db"`
	ChunkSize       int    `env:"CHUNK_SIZE" envDefault:"500"`
	ChunkOverlap    int    `env:"CHUNK_OVERLAP" envDefault:"50"`
	RetrieverK      int    `env:"RETRIEVER_K" envDefault:"3"`
}

// RiskConfig holds the five numeric risk thresholds
type RiskConfig struct {
	BPSystolicHigh  int     `env:"BP_SYSTOLIC_HIGH" envDefault:"140"`
	BPDiastolicHigh int     `env:"BP_DIASTOLIC_HIGH" envDefault:"90"`
	GlucoseHigh     float64 `env:"GLUCOSE_HIGH" envDefault:"140"`
	HeartRateHigh   int     `env:"HEART_RATE_HIGH" envDefault:"100"`
	HeartRateLow    int     `env:"HEART_RATE_LOW" envDefault:"60"`
}

type EmbedderConnectorConfig struct {
	HTTPClientConfig
	Model string               `env:"MODEL" envDefault:"nomic-embed-text"`
	Retry pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type LLMConnectorConfig struct {
	HTTPClientConfig
	Model       string               `env:"MODEL" envDefault:"mistral"`
	Temperature float64              `env:"TEMPERATURE" envDefault:"0.3"`
	Retry       pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"120s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"120s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL" envDefault:"http://localhost:11434"`
}

// AuthConfig holds JWT and session settings
type AuthConfig struct {
	JWTSecret    string        `env:"JWT_SECRET,notEmpty"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	UserCacheTTL time.Duration `env:"USER_CACHE_TTL" envDefault:"5m"`
}

// ReportConfig holds report generation settings
type ReportConfig struct {
	OutputDir     string `env:"OUTPUT_DIR" envDefault:"reports"`
	DefaultFormat string `env:"DEFAULT_FORMAT" envDefault:"pdf"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errs []string

	if cfg.RAGCfg.ChunkSize < 1 {
		errs = append(errs, fmt.Sprintf("RAG_CHUNK_SIZE must be positive, got %d", cfg.RAGCfg.ChunkSize))
	}

	if cfg.RAGCfg.ChunkOverlap < 0 || cfg.RAGCfg.ChunkOverlap >= cfg.RAGCfg.ChunkSize {
		errs = append(errs, fmt.Sprintf("RAG_CHUNK_OVERLAP must be in [0, chunk size), got %d", cfg.RAGCfg.ChunkOverlap))
	}

	if cfg.RAGCfg.RetrieverK < 1 {
		errs = append(errs, fmt.Sprintf("RAG_RETRIEVER_K must be at least 1, got %d", cfg.RAGCfg.RetrieverK))
	}

	if err := cfg.RiskCfg.Validate(); err != nil {
		errs = append(errs, err.Error())
	}

	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errs = append(errs, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errs = append(errs, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	if cfg.LLMConnectorCfg.Temperature < 0 || cfg.LLMConnectorCfg.Temperature > 2 {
		errs = append(errs, fmt.Sprintf("LLM_TEMPERATURE must be between 0 and 2, got %g", cfg.LLMConnectorCfg.Temperature))
	}

	switch cfg.ReportCfg.DefaultFormat {
	case "pdf", "docx", "md":
	default:
		errs = append(errs, fmt.Sprintf("REPORT_DEFAULT_FORMAT must be pdf, docx or md, got %q", cfg.ReportCfg.DefaultFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// Validate rejects a missing or nonsensical threshold set. A zero
// threshold would silently disable its check, so it is treated as a
// fatal configuration error.
func (rc *RiskConfig) Validate() error {
	if rc.BPSystolicHigh <= 0 || rc.BPDiastolicHigh <= 0 || rc.GlucoseHigh <= 0 ||
		rc.HeartRateHigh <= 0 || rc.HeartRateLow <= 0 {
		return fmt.Errorf("risk thresholds must all be positive: %+v", *rc)
	}
	if rc.HeartRateLow >= rc.HeartRateHigh {
		return fmt.Errorf("RISK_HEART_RATE_LOW (%d) must be below RISK_HEART_RATE_HIGH (%d)", rc.HeartRateLow, rc.HeartRateHigh)
	}
	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
