package services

import (
	"context"

	"github.com/SscSPs/arp_backend/internal/core/domain"
)

// PayrollReaderSvc defines read operations over payroll uploads.
type PayrollReaderSvc interface {
	// ListUploads retrieves every upload without its records.
	ListUploads(ctx context.Context) ([]domain.PayrollUpload, error)

	// GetUpload retrieves an upload with its records.
	GetUpload(ctx context.Context, uploadID string) (*domain.PayrollUpload, error)

	// Diagnostics describes how an upload's rows are read.
	Diagnostics(ctx context.Context, uploadID string) (*domain.PayrollDiagnostics, error)
}

// PayrollWriterSvc defines write operations over payroll uploads.
type PayrollWriterSvc interface {
	// UploadPayroll stores records as a new upload, or appends them to the
	// upload appendToID when it is not empty. The bool reports an append.
	UploadPayroll(ctx context.Context, filename string, records []domain.PayrollRecord, appendToID string, userID string) (*domain.PayrollUpload, bool, error)

	// UpdateUpload replaces the records of an upload.
	UpdateUpload(ctx context.Context, uploadID string, records []domain.PayrollRecord, userID string) (*domain.PayrollUpload, error)

	// DeleteUpload removes an upload.
	DeleteUpload(ctx context.Context, uploadID string) error
}

// PayrollSvcFacade combines all payroll service interfaces
type PayrollSvcFacade interface {
	PayrollReaderSvc
	PayrollWriterSvc
}
