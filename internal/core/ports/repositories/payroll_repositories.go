package repositories

import (
	"context"

	"github.com/SscSPs/arp_backend/internal/core/domain"
)

// PayrollReader defines read operations for payroll uploads.
type PayrollReader interface {
	// FindUploadByID retrieves an upload with all of its records.
	FindUploadByID(ctx context.Context, uploadID string) (*domain.PayrollUpload, error)

	// ListUploads retrieves every upload, newest first, without records.
	ListUploads(ctx context.Context) ([]domain.PayrollUpload, error)

	// ListPeriodTotals retrieves the totals stored for period, grouped by
	// upload. Groups come in upload order: oldest first, ties broken by id.
	ListPeriodTotals(ctx context.Context, period string) ([][]domain.PayrollPeriodTotals, error)
}

// PayrollWriter defines write operations for payroll uploads. Each write
// stores the records and their period totals atomically.
type PayrollWriter interface {
	// SaveUpload persists a new upload.
	SaveUpload(ctx context.Context, upload domain.PayrollUpload, totals []domain.PayrollPeriodTotals) error

	// ReplaceUpload overwrites the records and totals of an existing upload.
	ReplaceUpload(ctx context.Context, upload domain.PayrollUpload, totals []domain.PayrollPeriodTotals) error

	// DeleteUpload removes an upload and its totals.
	DeleteUpload(ctx context.Context, uploadID string) error
}

// PayrollRepositoryFacade combines all payroll repository interfaces.
type PayrollRepositoryFacade interface {
	PayrollReader
	PayrollWriter
}

// PayrollRepositoryWithTx extends PayrollRepositoryFacade with transaction capabilities
type PayrollRepositoryWithTx interface {
	PayrollRepositoryFacade
	TransactionManager
}
