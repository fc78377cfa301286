package entity

import "errors"

// Domain errors
var (
	// Auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// Patient errors
	ErrPatientNotFound = errors.New("patient not found")

	// Vitals and assessment errors
	ErrInvalidVitals      = errors.New("invalid vitals data")
	ErrNoVitalsRecorded   = errors.New("no vitals recorded for patient")
	ErrAssessmentNotFound = errors.New("risk assessment not found")

	// Conversation errors
	ErrConversationNotFound = errors.New("conversation not found")

	// Report errors
	ErrReportNotFound    = errors.New("report not found")
	ErrReportFileMissing = errors.New("report file missing on disk")
	ErrUnsupportedFormat = errors.New("unsupported report format")

	// Pipeline errors. ErrVectorStoreMissing is an initialization
	// failure: it is raised once at construction, never at query time.
	// ErrQueryFailed wraps any embed/retrieve/generate error for a
	// single request; the underlying message is preserved in the chain.
	ErrVectorStoreMissing = errors.New("vector store not found, run ingestion first")
	ErrQueryFailed        = errors.New("retrieval query failed")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
)
