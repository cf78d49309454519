package handlers_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/SscSPs/arp_backend/internal/core/domain"
	portssvc "github.com/SscSPs/arp_backend/internal/core/ports/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// --- Mock FECAnalysisService ---
type MockFECAnalysisService struct {
	mock.Mock
}

func (m *MockFECAnalysisService) AnalyzeLedger(ctx context.Context, filename string, entries []domain.LedgerEntry, userID string) (*domain.FECAnalysis, error) {
	args := m.Called(ctx, filename, entries, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FECAnalysis), args.Error(1)
}
func (m *MockFECAnalysisService) ListAnalyses(ctx context.Context, userID string) ([]domain.FECAnalysis, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FECAnalysis), args.Error(1)
}
func (m *MockFECAnalysisService) GetAnalysis(ctx context.Context, analysisID string, userID string) (*domain.FECAnalysis, error) {
	args := m.Called(ctx, analysisID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FECAnalysis), args.Error(1)
}
func (m *MockFECAnalysisService) DeleteAnalysis(ctx context.Context, analysisID string, userID string) error {
	args := m.Called(ctx, analysisID, userID)
	return args.Error(0)
}
func (m *MockFECAnalysisService) Statistics(ctx context.Context, userID string) (*domain.FECStatistics, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FECStatistics), args.Error(1)
}
func (m *MockFECAnalysisService) PayrollForPeriod(ctx context.Context, period string) domain.PayrollAggregate {
	args := m.Called(ctx, period)
	return args.Get(0).(domain.PayrollAggregate)
}
func (m *MockFECAnalysisService) ProbePeriod(raw string) domain.PeriodProbe {
	args := m.Called(raw)
	return args.Get(0).(domain.PeriodProbe)
}

// Ensure mock implements the interface
var _ portssvc.FECAnalysisSvcFacade = (*MockFECAnalysisService)(nil)

// --- Mock PayrollService ---
type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) UploadPayroll(ctx context.Context, filename string, records []domain.PayrollRecord, appendToID string, userID string) (*domain.PayrollUpload, bool, error) {
	args := m.Called(ctx, filename, records, appendToID, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.PayrollUpload), args.Bool(1), args.Error(2)
}
func (m *MockPayrollService) UpdateUpload(ctx context.Context, uploadID string, records []domain.PayrollRecord, userID string) (*domain.PayrollUpload, error) {
	args := m.Called(ctx, uploadID, records, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollUpload), args.Error(1)
}
func (m *MockPayrollService) DeleteUpload(ctx context.Context, uploadID string) error {
	args := m.Called(ctx, uploadID)
	return args.Error(0)
}
func (m *MockPayrollService) ListUploads(ctx context.Context) ([]domain.PayrollUpload, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollUpload), args.Error(1)
}
func (m *MockPayrollService) GetUpload(ctx context.Context, uploadID string) (*domain.PayrollUpload, error) {
	args := m.Called(ctx, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollUpload), args.Error(1)
}
func (m *MockPayrollService) Diagnostics(ctx context.Context, uploadID string) (*domain.PayrollDiagnostics, error) {
	args := m.Called(ctx, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollDiagnostics), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PayrollSvcFacade = (*MockPayrollService)(nil)

// generateTestToken creates a signed JWT for testing.
func generateTestToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    "arp-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

// newUploadRequest builds a multipart request carrying content as "file"
// plus any extra form fields.
func newUploadRequest(url, filename, content string, fields map[string]string) (*http.Request, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write([]byte(content)); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req, nil
}
