package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/arp_backend/internal/core/ports/services"
	"github.com/SscSPs/arp_backend/internal/dto"
	"github.com/SscSPs/arp_backend/internal/ingest"
	"github.com/SscSPs/arp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fecAnalysisHandler handles HTTP requests related to FEC analyses.
type fecAnalysisHandler struct {
	analysisService portssvc.FECAnalysisSvcFacade
	maxUploadBytes  int64
}

// newFECAnalysisHandler creates a new fecAnalysisHandler.
func newFECAnalysisHandler(as portssvc.FECAnalysisSvcFacade, maxUploadBytes int64) *fecAnalysisHandler {
	return &fecAnalysisHandler{
		analysisService: as,
		maxUploadBytes:  maxUploadBytes,
	}
}

// RegisterFECAnalysisRoutes registers routes related to FEC analyses.
func RegisterFECAnalysisRoutes(rg *gin.RouterGroup, analysisService portssvc.FECAnalysisSvcFacade, opts UploadOptions) {
	h := newFECAnalysisHandler(analysisService, opts.MaxUploadBytes)

	fec := rg.Group("/fec-analysis")
	{
		fec.POST("/upload", opts.chain(h.uploadLedger)...)
		fec.POST("/upload-fec", opts.chain(h.uploadLedger)...)
		fec.GET("/analyses", h.listAnalyses)
		fec.GET("/analyses/:analysis_id", h.getAnalysis)
		fec.DELETE("/analyses/:analysis_id", h.deleteAnalysis)
		fec.GET("/analyses/:analysis_id/export", h.exportAnalysis)
		fec.GET("/statistics", h.getStatistics)
		fec.GET("/payroll/:period", h.getPayrollForPeriod)
		fec.GET("/excel-date/:serial", h.probePeriod)
	}
}

// uploadLedger godoc
// @Summary Analyze a FEC file
// @Description Segments an uploaded general-ledger export (.xlsx or .csv) into the cost blocks of the monthly report and stores the result
// @Tags fec-analysis
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "FEC export"
// @Success 200 {object} dto.AnalysisUploadResponse
// @Failure 400 {object} map[string]string "Unsupported format, missing column or empty file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 500 {object} map[string]string "Failed to analyze file"
// @Security BearerAuth
// @Router /fec-analysis/upload [post]
// @Router /fec-analysis/upload-fec [post]
func (h *fecAnalysisHandler) uploadLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	filename, sheet, err := readUploadedSheet(c, h.maxUploadBytes)
	if err != nil {
		abortWithError(c, logger, err, "Failed to read FEC file")
		return
	}
	logger = logger.With(slog.String("filename", filename))

	entries, err := ingest.LedgerEntries(sheet)
	if err != nil {
		abortWithError(c, logger, err, "Failed to read FEC file")
		return
	}
	logger.Info("Received FEC file", slog.Int("entries", len(entries)))

	analysis, err := h.analysisService.AnalyzeLedger(c.Request.Context(), filename, entries, userID)
	if err != nil {
		abortWithError(c, logger, err, "Failed to analyze FEC file")
		return
	}

	logger.Info("FEC file analyzed", slog.String("analysis_id", analysis.AnalysisID))
	c.JSON(http.StatusOK, dto.ToAnalysisUploadResponse(analysis))
}

// listAnalyses godoc
// @Summary List analyses
// @Description Lists the analyses of the logged-in user, newest first
// @Tags fec-analysis
// @Produce  json
// @Success 200 {array} dto.AnalysisResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list analyses"
// @Security BearerAuth
// @Router /fec-analysis/analyses [get]
func (h *fecAnalysisHandler) listAnalyses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	analyses, err := h.analysisService.ListAnalyses(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, logger, err, "Failed to list analyses")
		return
	}

	logger.Info("Analyses listed", slog.Int("count", len(analyses)))
	c.JSON(http.StatusOK, dto.ToAnalysisListResponse(analyses))
}

// getAnalysis godoc
// @Summary Get an analysis
// @Description Retrieves one analysis of the logged-in user
// @Tags fec-analysis
// @Produce  json
// @Param   analysis_id path string true "Analysis ID"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Analysis not found"
// @Failure 500 {object} map[string]string "Failed to retrieve analysis"
// @Security BearerAuth
// @Router /fec-analysis/analyses/{analysis_id} [get]
func (h *fecAnalysisHandler) getAnalysis(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	analysisID := c.Param("analysis_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	analysis, err := h.analysisService.GetAnalysis(c.Request.Context(), analysisID, userID)
	if err != nil {
		abortWithError(c, logger.With(slog.String("analysis_id", analysisID)), err, "Failed to retrieve analysis")
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalysisResponse(analysis))
}

// deleteAnalysis godoc
// @Summary Delete an analysis
// @Tags fec-analysis
// @Produce  json
// @Param   analysis_id path string true "Analysis ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Analysis not found"
// @Failure 500 {object} map[string]string "Failed to delete analysis"
// @Security BearerAuth
// @Router /fec-analysis/analyses/{analysis_id} [delete]
func (h *fecAnalysisHandler) deleteAnalysis(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	analysisID := c.Param("analysis_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.analysisService.DeleteAnalysis(c.Request.Context(), analysisID, userID); err != nil {
		abortWithError(c, logger.With(slog.String("analysis_id", analysisID)), err, "Failed to delete analysis")
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "success", Message: "Analysis deleted"})
}

// exportAnalysis godoc
// @Summary Export an analysis
// @Description Downloads an analysis as a JSON attachment
// @Tags fec-analysis
// @Produce  json
// @Param   analysis_id path string true "Analysis ID"
// @Success 200 {object} dto.AnalysisExportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Analysis not found"
// @Failure 500 {object} map[string]string "Failed to export analysis"
// @Security BearerAuth
// @Router /fec-analysis/analyses/{analysis_id}/export [get]
func (h *fecAnalysisHandler) exportAnalysis(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	analysisID := c.Param("analysis_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	analysis, err := h.analysisService.GetAnalysis(c.Request.Context(), analysisID, userID)
	if err != nil {
		abortWithError(c, logger.With(slog.String("analysis_id", analysisID)), err, "Failed to export analysis")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_export.json", analysis.Filename))
	c.JSON(http.StatusOK, dto.ToAnalysisExportResponse(analysis))
}

// getStatistics godoc
// @Summary Analysis statistics
// @Description Counts the analyses of the logged-in user and lists the five most recent
// @Tags fec-analysis
// @Produce  json
// @Success 200 {object} dto.StatisticsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Security BearerAuth
// @Router /fec-analysis/statistics [get]
func (h *fecAnalysisHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.analysisService.Statistics(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, logger, err, "Failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, dto.ToStatisticsResponse(stats))
}

// getPayrollForPeriod godoc
// @Summary Payroll costs of a period
// @Description Shows the payroll block an analysis of the given period would use
// @Tags fec-analysis
// @Produce  json
// @Param   period path string true "Period label, such as 'Avril 2025'"
// @Success 200 {object} domain.PayrollAggregate
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /fec-analysis/payroll/{period} [get]
func (h *fecAnalysisHandler) getPayrollForPeriod(c *gin.Context) {
	period := c.Param("period")
	c.JSON(http.StatusOK, h.analysisService.PayrollForPeriod(c.Request.Context(), period))
}

// probePeriod godoc
// @Summary Read a date cell
// @Description Shows how a raw date cell is read by the ledger and payroll period normalizers
// @Tags fec-analysis
// @Produce  json
// @Param   serial path string true "Raw cell value, such as an Excel day serial"
// @Success 200 {object} domain.PeriodProbe
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /fec-analysis/excel-date/{serial} [get]
func (h *fecAnalysisHandler) probePeriod(c *gin.Context) {
	c.JSON(http.StatusOK, h.analysisService.ProbePeriod(c.Param("serial")))
}
