package services

import (
	"context"
	"encoding/json"
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

// recentAnalysesLimit is how many analyses Statistics lists.
const recentAnalysesLimit = 5

// fecAnalysisService implements the FECAnalysisSvcFacade interface
type fecAnalysisService struct {
	BaseService
	analysisRepo portsrepo.FECAnalysisRepositoryFacade
	payrollRepo  portsrepo.PayrollReader
	labels       fec.LabelBook
	now          func() time.Time
	newID        func() string
}

// FECAnalysisOption is a functional option for configuring the analysis service
type FECAnalysisOption func(*fecAnalysisService)

// WithLabelBook replaces the default account label configuration
func WithLabelBook(book fec.LabelBook) FECAnalysisOption {
	return func(s *fecAnalysisService) {
		s.labels = book
	}
}

// WithAnalysisClock sets the clock used to stamp analyses
func WithAnalysisClock(now func() time.Time) FECAnalysisOption {
	return func(s *fecAnalysisService) {
		s.now = now
	}
}

// WithAnalysisIDGenerator sets how analysis ids are generated
func WithAnalysisIDGenerator(newID func() string) FECAnalysisOption {
	return func(s *fecAnalysisService) {
		s.newID = newID
	}
}

// NewFECAnalysisService creates a new analysis service with the provided options
func NewFECAnalysisService(analysisRepo portsrepo.FECAnalysisRepositoryFacade, payrollRepo portsrepo.PayrollReader, options ...FECAnalysisOption) portssvc.FECAnalysisSvcFacade {
	svc := &fecAnalysisService{
		analysisRepo: analysisRepo,
		payrollRepo:  payrollRepo,
		labels:       fec.DefaultLabelBook(),
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure fecAnalysisService implements the FECAnalysisSvcFacade interface
var _ portssvc.FECAnalysisSvcFacade = (*fecAnalysisService)(nil)

func (s *fecAnalysisService) AnalyzeLedger(ctx context.Context, filename string, entries []domain.LedgerEntry, userID string) (*domain.FECAnalysis, error) {
	if len(entries) == 0 {
		return nil, apperrors.NewValidationFailedError("empty file or unexpected format")
	}

	if skipped := fec.UnreadableAmountRows(entries); len(skipped) > 0 {
		s.LogDebug(ctx, "Ledger rows with unreadable amounts are ignored",
			slog.String("filename", filename),
			slog.Any("rows", skipped))
	}

	period := fec.LedgerPeriod(entries)
	payroll := s.PayrollForPeriod(ctx, period)

	result, err := fec.Analyze(entries, payroll, s.labels)
	if err != nil {
		if errors.Is(err, fec.ErrEmptyLedger) {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		return nil, err
	}

	raw, err := json.Marshal(result)
	if err != nil {
		s.LogError(ctx, err, "Failed to encode analysis", slog.String("filename", filename))
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}

	analysis := domain.FECAnalysis{
		AnalysisID: s.newID(),
		Filename:   filename,
		UploadDate: s.now().UTC(),
		UserID:     userID,
		Period:     period,
		Results:    string(raw),
	}
	if err := s.analysisRepo.SaveAnalysis(ctx, analysis); err != nil {
		s.LogError(ctx, err, "Failed to save analysis",
			slog.String("analysis_id", analysis.AnalysisID),
			slog.String("filename", filename))
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	s.LogInfo(ctx, "Ledger analyzed",
		slog.String("analysis_id", analysis.AnalysisID),
		slog.String("period", period),
		slog.Int("entries", len(entries)))
	return &analysis, nil
}

// PayrollForPeriod never fails: without readable payroll data the analysis
// simply carries zero payroll costs.
func (s *fecAnalysisService) PayrollForPeriod(ctx context.Context, period string) domain.PayrollAggregate {
	totals, err := s.payrollRepo.ListPeriodTotals(ctx, period)
	if err != nil {
		s.LogWarn(ctx, err, "Payroll totals unavailable, using zero payroll", slog.String("period", period))
		return fec.ZeroPayroll(period)
	}
	return fec.AggregatePayroll(period, totals)
}

func (s *fecAnalysisService) ListAnalyses(ctx context.Context, userID string) ([]domain.FECAnalysis, error) {
	analyses, err := s.analysisRepo.ListAnalysesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list analyses")
		return nil, err
	}
	if analyses == nil {
		return []domain.FECAnalysis{}, nil
	}
	return analyses, nil
}

func (s *fecAnalysisService) GetAnalysis(ctx context.Context, analysisID string, userID string) (*domain.FECAnalysis, error) {
	analysis, err := s.analysisRepo.FindAnalysisByID(ctx, analysisID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get analysis", slog.String("analysis_id", analysisID))
		}
		return nil, err
	}
	return analysis, nil
}

func (s *fecAnalysisService) DeleteAnalysis(ctx context.Context, analysisID string, userID string) error {
	if err := s.analysisRepo.DeleteAnalysis(ctx, analysisID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete analysis", slog.String("analysis_id", analysisID))
		}
		return err
	}
	s.LogInfo(ctx, "Analysis deleted", slog.String("analysis_id", analysisID))
	return nil
}

func (s *fecAnalysisService) Statistics(ctx context.Context, userID string) (*domain.FECStatistics, error) {
	total, err := s.analysisRepo.CountAnalysesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count analyses")
		return nil, err
	}
	recent, err := s.analysisRepo.ListRecentAnalyses(ctx, userID, recentAnalysesLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent analyses")
		return nil, err
	}
	if recent == nil {
		recent = []domain.FECAnalysis{}
	}
	return &domain.FECStatistics{TotalAnalyses: total, Recent: recent}, nil
}

func (s *fecAnalysisService) ProbePeriod(raw string) domain.PeriodProbe {
	return fec.ProbePeriod(raw)
}
