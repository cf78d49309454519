package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/arp_backend/internal/apperrors"
	"github.com/SscSPs/arp_backend/internal/core/domain"
	"github.com/SscSPs/arp_backend/internal/dto"
	"github.com/SscSPs/arp_backend/internal/handlers"
	"github.com/SscSPs/arp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const payrollCSV = "Salarié;Service;P / HP;Mois;Brut;Charges patronales;Suppléments coût global\n" +
	"DUPONT Jean;Atelier;P;45777;2000;800;100\n" +
	"MARTIN Paul;Compta;HP;45777;1500;600;0\n"

type PayrollHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPayrollService *MockPayrollService
	userID             string
	token              string
}

func (suite *PayrollHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))

	suite.mockPayrollService = new(MockPayrollService)
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterPayrollRoutes(v1, suite.mockPayrollService, handlers.UploadOptions{MaxUploadBytes: 1 << 20})

	suite.userID = uuid.NewString()
	token, err := generateTestToken(suite.userID)
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *PayrollHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PayrollHandlerTestSuite) TestUpload_New() {
	suite.mockPayrollService.On("UploadPayroll", mock.Anything, "couts.csv",
		mock.MatchedBy(func(records []domain.PayrollRecord) bool {
			return len(records) == 2 &&
				records[0].Employee == "DUPONT Jean" &&
				records[0].ProductionFlag == "P" &&
				records[0].Month == "45777" &&
				records[1].EmployerCharges == "600" &&
				records[1].NetPay == ""
		}),
		"", suite.userID,
	).Return(&domain.PayrollUpload{UploadID: "f1", TotalRecords: 2}, false, nil).Once()

	req, err := newUploadRequest("/api/v1/payroll/upload", "couts.csv", payrollCSV, nil)
	suite.Require().NoError(err)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"success":true,"file_id":"f1","appended":false,"total_records":2}`, w.Body.String())
	suite.mockPayrollService.AssertExpectations(suite.T())
}

func (suite *PayrollHandlerTestSuite) TestUpload_Append() {
	suite.mockPayrollService.On("UploadPayroll", mock.Anything, "couts.csv", mock.Anything, "f0", suite.userID).
		Return(&domain.PayrollUpload{UploadID: "f0", TotalRecords: 5}, true, nil).Once()

	req, err := newUploadRequest("/api/v1/payroll/upload-couts-salariaux", "couts.csv", payrollCSV,
		map[string]string{"append_to_file_id": "f0"})
	suite.Require().NoError(err)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"success":true,"file_id":"f0","appended":true,"total_records":5}`, w.Body.String())
}

func (suite *PayrollHandlerTestSuite) TestUpload_AppendTargetMissing() {
	suite.mockPayrollService.On("UploadPayroll", mock.Anything, "couts.csv", mock.Anything, "gone", suite.userID).
		Return(nil, false, apperrors.NewNotFoundError("destination payroll file not found")).Once()

	req, err := newUploadRequest("/api/v1/payroll/upload", "couts.csv", payrollCSV,
		map[string]string{"append_to_file_id": "gone"})
	suite.Require().NoError(err)
	w := suite.serve(req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PayrollHandlerTestSuite) TestUpload_TooLarge() {
	router := gin.New()
	router.Use(middleware.AuthMiddleware(testJWTSecret))
	handlers.RegisterPayrollRoutes(router.Group("/api/v1"), suite.mockPayrollService, handlers.UploadOptions{MaxUploadBytes: 64})

	req, err := newUploadRequest("/api/v1/payroll/upload", "couts.csv", strings.Repeat(payrollCSV, 10), nil)
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusRequestEntityTooLarge, w.Code)
	suite.mockPayrollService.AssertNotCalled(suite.T(), "UploadPayroll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PayrollHandlerTestSuite) TestUpload_MiddlewareRunsFirst() {
	router := gin.New()
	router.Use(middleware.AuthMiddleware(testJWTSecret))
	blocked := func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
	}
	handlers.RegisterPayrollRoutes(router.Group("/api/v1"), suite.mockPayrollService,
		handlers.UploadOptions{Middleware: []gin.HandlerFunc{blocked}})

	req, err := newUploadRequest("/api/v1/payroll/upload", "couts.csv", payrollCSV, nil)
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.mockPayrollService.AssertNotCalled(suite.T(), "UploadPayroll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PayrollHandlerTestSuite) TestListFiles() {
	uploaded := time.Date(2025, time.May, 2, 9, 30, 0, 0, time.UTC)
	suite.mockPayrollService.On("ListUploads", mock.Anything).Return([]domain.PayrollUpload{
		{UploadID: "f1", Filename: "avril.xlsx", UploadedAt: uploaded, TotalRecords: 12},
	}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/payroll/files", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"success":true,"files":[{"id":"f1","filename":"avril.xlsx","uploaded_at":"2025-05-02T09:30:00Z","total_records":12}]}`, w.Body.String())
}

func (suite *PayrollHandlerTestSuite) TestGetFile() {
	suite.mockPayrollService.On("GetUpload", mock.Anything, "f1").Return(&domain.PayrollUpload{
		UploadID:     "f1",
		Filename:     "avril.xlsx",
		Records:      []domain.PayrollRecord{{Employee: "DUPONT Jean", GrossPay: "2000"}},
		TotalRecords: 1,
	}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/payroll/files/f1", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.PayrollFileResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Success)
	suite.Equal("f1", body.FileInfo.ID)
	suite.Require().Len(body.Data, 1)
	suite.Equal(domain.Cell("2000"), body.Data[0].GrossPay)
	suite.Contains(w.Body.String(), `"Salarié":"DUPONT Jean"`)
}

func (suite *PayrollHandlerTestSuite) TestGetFile_NotFound() {
	suite.mockPayrollService.On("GetUpload", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/payroll/files/missing", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PayrollHandlerTestSuite) TestUpdateFile() {
	suite.mockPayrollService.On("UpdateUpload", mock.Anything, "f1",
		mock.MatchedBy(func(records []domain.PayrollRecord) bool {
			return len(records) == 1 && records[0].Employee == "DUPONT Jean" && records[0].GrossPay == "2500"
		}),
		suite.userID,
	).Return(&domain.PayrollUpload{UploadID: "f1", TotalRecords: 1, Records: []domain.PayrollRecord{{Employee: "DUPONT Jean", GrossPay: "2500"}}}, nil).Once()

	req, _ := http.NewRequest(http.MethodPut, "/api/v1/payroll/files/f1",
		strings.NewReader(`{"data":[{"Salarié":"DUPONT Jean","Brut":2500}]}`))
	req.Header.Set("Content-Type", "application/json")
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPayrollService.AssertExpectations(suite.T())
}

func (suite *PayrollHandlerTestSuite) TestUpdateFile_BadBody() {
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/payroll/files/f1", strings.NewReader(`{"rows":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPayrollService.AssertNotCalled(suite.T(), "UpdateUpload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PayrollHandlerTestSuite) TestDeleteFile() {
	suite.mockPayrollService.On("DeleteUpload", mock.Anything, "f1").Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/payroll/files/f1", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message":"Payroll file deleted"}`, w.Body.String())
}

func (suite *PayrollHandlerTestSuite) TestDiagnostics() {
	suite.mockPayrollService.On("Diagnostics", mock.Anything, "f1").Return(&domain.PayrollDiagnostics{
		UploadID:            "f1",
		AvailableMonths:     []string{"Avril 2025"},
		TotalRows:           2,
		ProductionCount:     1,
		AdministrationCount: 1,
		SampleValues:        []string{"P -> PRODUCTION", "HP -> ADMINISTRATION"},
		SampleRows:          []domain.PayrollSampleRow{},
	}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/payroll/files/f1/diagnostics", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"available_months":["Avril 2025"]`)
	suite.Contains(w.Body.String(), `"production_count":1`)
}

func TestPayrollHandler(t *testing.T) {
	suite.Run(t, new(PayrollHandlerTestSuite))
}
