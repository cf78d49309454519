package repositories

import (
	"context"

	"github.com/SscSPs/arp_backend/internal/core/domain"
)

// FECAnalysisReader defines read operations for stored analyses. Every read
// is scoped to the owning user.
type FECAnalysisReader interface {
	// FindAnalysisByID retrieves one analysis. Analyses owned by another user
	// are reported as apperrors.ErrNotFound.
	FindAnalysisByID(ctx context.Context, analysisID, userID string) (*domain.FECAnalysis, error)

	// ListAnalysesByUser retrieves a user's analyses, newest first.
	ListAnalysesByUser(ctx context.Context, userID string) ([]domain.FECAnalysis, error)

	// CountAnalysesByUser returns how many analyses a user owns.
	CountAnalysesByUser(ctx context.Context, userID string) (int, error)

	// ListRecentAnalyses retrieves at most limit analyses, newest first,
	// without their results.
	ListRecentAnalyses(ctx context.Context, userID string, limit int) ([]domain.FECAnalysis, error)
}

// FECAnalysisWriter defines write operations for stored analyses.
type FECAnalysisWriter interface {
	// SaveAnalysis persists a new analysis.
	SaveAnalysis(ctx context.Context, analysis domain.FECAnalysis) error

	// DeleteAnalysis removes an analysis owned by userID.
	DeleteAnalysis(ctx context.Context, analysisID, userID string) error
}

// FECAnalysisRepositoryFacade combines all analysis repository interfaces.
type FECAnalysisRepositoryFacade interface {
	FECAnalysisReader
	FECAnalysisWriter
}

// FECAnalysisRepositoryWithTx extends FECAnalysisRepositoryFacade with transaction capabilities
type FECAnalysisRepositoryWithTx interface {
	FECAnalysisRepositoryFacade
	TransactionManager
}
