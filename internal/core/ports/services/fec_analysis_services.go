package services

import (
	"context"

	"github.com/SscSPs/arp_backend/internal/core/domain"
)

// FECAnalysisReaderSvc defines read operations over a user's analyses.
type FECAnalysisReaderSvc interface {
	// ListAnalyses retrieves the user's analyses, newest first.
	ListAnalyses(ctx context.Context, userID string) ([]domain.FECAnalysis, error)

	// GetAnalysis retrieves one analysis owned by the user.
	GetAnalysis(ctx context.Context, analysisID string, userID string) (*domain.FECAnalysis, error)

	// Statistics counts the user's analyses and lists the most recent ones.
	Statistics(ctx context.Context, userID string) (*domain.FECStatistics, error)

	// PayrollForPeriod returns the payroll block an analysis of period would use.
	PayrollForPeriod(ctx context.Context, period string) domain.PayrollAggregate

	// ProbePeriod shows how a raw date value is turned into a period.
	ProbePeriod(raw string) domain.PeriodProbe
}

// FECAnalysisWriterSvc defines write operations over a user's analyses.
type FECAnalysisWriterSvc interface {
	// AnalyzeLedger segments a ledger batch and stores the result.
	AnalyzeLedger(ctx context.Context, filename string, entries []domain.LedgerEntry, userID string) (*domain.FECAnalysis, error)

	// DeleteAnalysis removes one analysis owned by the user.
	DeleteAnalysis(ctx context.Context, analysisID string, userID string) error
}

// FECAnalysisSvcFacade combines all analysis service interfaces
type FECAnalysisSvcFacade interface {
	FECAnalysisReaderSvc
	FECAnalysisWriterSvc
}
