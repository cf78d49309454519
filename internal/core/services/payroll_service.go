package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/arp_backend/internal/apperrors"
	"github.com/SscSPs/arp_backend/internal/core/domain"
	"github.com/SscSPs/arp_backend/internal/core/fec"
	portsrepo "github.com/SscSPs/arp_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/arp_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

// payrollService implements the PayrollSvcFacade interface. Payroll uploads
// are shared by every user of the deployment.
type payrollService struct {
	BaseService
	repo  portsrepo.PayrollRepositoryFacade
	now   func() time.Time
	newID func() string
}

// PayrollOption is a functional option for configuring the payroll service
type PayrollOption func(*payrollService)

// WithPayrollClock sets the clock used to stamp uploads
func WithPayrollClock(now func() time.Time) PayrollOption {
	return func(s *payrollService) {
		s.now = now
	}
}

// WithPayrollIDGenerator sets how upload ids are generated
func WithPayrollIDGenerator(newID func() string) PayrollOption {
	return func(s *payrollService) {
		s.newID = newID
	}
}

// NewPayrollService creates a new payroll service with the provided options
func NewPayrollService(repo portsrepo.PayrollRepositoryFacade, options ...PayrollOption) portssvc.PayrollSvcFacade {
	svc := &payrollService{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure payrollService implements the PayrollSvcFacade interface
var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

func (s *payrollService) UploadPayroll(ctx context.Context, filename string, records []domain.PayrollRecord, appendToID string, userID string) (*domain.PayrollUpload, bool, error) {
	if len(records) == 0 {
		return nil, false, apperrors.NewValidationFailedError("payroll file holds no rows")
	}
	if appendToID != "" {
		upload, err := s.appendRecords(ctx, appendToID, records)
		return upload, upload != nil, err
	}

	upload := domain.PayrollUpload{
		UploadID:     s.newID(),
		Filename:     filename,
		Records:      records,
		TotalRecords: len(records),
		UploadedAt:   s.now().UTC(),
		UploadedBy:   userID,
	}
	totals := fec.SummarizePayroll(upload.UploadID, records)
	if err := s.repo.SaveUpload(ctx, upload, totals); err != nil {
		s.LogError(ctx, err, "Failed to save payroll upload", slog.String("filename", filename))
		return nil, false, fmt.Errorf("failed to save payroll upload: %w", err)
	}

	s.LogInfo(ctx, "Payroll upload created",
		slog.String("upload_id", upload.UploadID),
		slog.Int("records", upload.TotalRecords),
		slog.Int("periods", len(totals)))
	return &upload, false, nil
}

func (s *payrollService) appendRecords(ctx context.Context, uploadID string, records []domain.PayrollRecord) (*domain.PayrollUpload, error) {
	upload, err := s.repo.FindUploadByID(ctx, uploadID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("destination payroll file not found")
		}
		s.LogError(ctx, err, "Failed to load payroll upload for append", slog.String("upload_id", uploadID))
		return nil, err
	}

	before := len(upload.Records)
	if err := s.replace(ctx, upload, fec.AppendPayrollRecords(upload.Records, records)); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Payroll records appended",
		slog.String("upload_id", uploadID),
		slog.Int("existing", before),
		slog.Int("appended", len(records)))
	return upload, nil
}

func (s *payrollService) UpdateUpload(ctx context.Context, uploadID string, records []domain.PayrollRecord, userID string) (*domain.PayrollUpload, error) {
	upload, err := s.repo.FindUploadByID(ctx, uploadID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load payroll upload for update", slog.String("upload_id", uploadID))
		}
		return nil, err
	}
	if records == nil {
		records = []domain.PayrollRecord{}
	}
	if err := s.replace(ctx, upload, records); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Payroll upload replaced",
		slog.String("upload_id", uploadID),
		slog.String("updated_by", userID),
		slog.Int("records", upload.TotalRecords))
	return upload, nil
}

// replace stores records as the content of upload and rebuilds its totals.
func (s *payrollService) replace(ctx context.Context, upload *domain.PayrollUpload, records []domain.PayrollRecord) error {
	now := s.now().UTC()
	upload.Records = records
	upload.TotalRecords = len(records)
	upload.UpdatedAt = &now

	totals := fec.SummarizePayroll(upload.UploadID, records)
	if err := s.repo.ReplaceUpload(ctx, *upload, totals); err != nil {
		s.LogError(ctx, err, "Failed to store payroll upload", slog.String("upload_id", upload.UploadID))
		return fmt.Errorf("failed to store payroll upload: %w", err)
	}
	return nil
}

func (s *payrollService) ListUploads(ctx context.Context) ([]domain.PayrollUpload, error) {
	uploads, err := s.repo.ListUploads(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payroll uploads")
		return nil, err
	}
	if uploads == nil {
		return []domain.PayrollUpload{}, nil
	}
	return uploads, nil
}

func (s *payrollService) GetUpload(ctx context.Context, uploadID string) (*domain.PayrollUpload, error) {
	upload, err := s.repo.FindUploadByID(ctx, uploadID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get payroll upload", slog.String("upload_id", uploadID))
		}
		return nil, err
	}
	return upload, nil
}

func (s *payrollService) DeleteUpload(ctx context.Context, uploadID string) error {
	if err := s.repo.DeleteUpload(ctx, uploadID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete payroll upload", slog.String("upload_id", uploadID))
		}
		return err
	}
	s.LogInfo(ctx, "Payroll upload deleted", slog.String("upload_id", uploadID))
	return nil
}

func (s *payrollService) Diagnostics(ctx context.Context, uploadID string) (*domain.PayrollDiagnostics, error) {
	upload, err := s.GetUpload(ctx, uploadID)
	if err != nil {
		return nil, err
	}
	d := fec.DiagnosePayroll(*upload)
	return &d, nil
}
