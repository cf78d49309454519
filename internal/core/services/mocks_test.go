package services_test

import (
	"context"

	"github.com/SscSPs/arp_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/arp_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock FECAnalysisRepository ---
type MockFECAnalysisRepository struct {
	mock.Mock
}

func (m *MockFECAnalysisRepository) SaveAnalysis(ctx context.Context, analysis domain.FECAnalysis) error {
	args := m.Called(ctx, analysis)
	return args.Error(0)
}

func (m *MockFECAnalysisRepository) FindAnalysisByID(ctx context.Context, analysisID, userID string) (*domain.FECAnalysis, error) {
	args := m.Called(ctx, analysisID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FECAnalysis), args.Error(1)
}

func (m *MockFECAnalysisRepository) ListAnalysesByUser(ctx context.Context, userID string) ([]domain.FECAnalysis, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FECAnalysis), args.Error(1)
}

func (m *MockFECAnalysisRepository) CountAnalysesByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockFECAnalysisRepository) ListRecentAnalyses(ctx context.Context, userID string, limit int) ([]domain.FECAnalysis, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FECAnalysis), args.Error(1)
}

func (m *MockFECAnalysisRepository) DeleteAnalysis(ctx context.Context, analysisID, userID string) error {
	args := m.Called(ctx, analysisID, userID)
	return args.Error(0)
}

var _ portsrepo.FECAnalysisRepositoryFacade = (*MockFECAnalysisRepository)(nil)

// --- Mock PayrollRepository ---
type MockPayrollRepository struct {
	mock.Mock
}

func (m *MockPayrollRepository) FindUploadByID(ctx context.Context, uploadID string) (*domain.PayrollUpload, error) {
	args := m.Called(ctx, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollUpload), args.Error(1)
}

func (m *MockPayrollRepository) ListUploads(ctx context.Context) ([]domain.PayrollUpload, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollUpload), args.Error(1)
}

func (m *MockPayrollRepository) ListPeriodTotals(ctx context.Context, period string) ([][]domain.PayrollPeriodTotals, error) {
	args := m.Called(ctx, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]domain.PayrollPeriodTotals), args.Error(1)
}

func (m *MockPayrollRepository) SaveUpload(ctx context.Context, upload domain.PayrollUpload, totals []domain.PayrollPeriodTotals) error {
	args := m.Called(ctx, upload, totals)
	return args.Error(0)
}

func (m *MockPayrollRepository) ReplaceUpload(ctx context.Context, upload domain.PayrollUpload, totals []domain.PayrollPeriodTotals) error {
	args := m.Called(ctx, upload, totals)
	return args.Error(0)
}

func (m *MockPayrollRepository) DeleteUpload(ctx context.Context, uploadID string) error {
	args := m.Called(ctx, uploadID)
	return args.Error(0)
}

var _ portsrepo.PayrollRepositoryFacade = (*MockPayrollRepository)(nil)
