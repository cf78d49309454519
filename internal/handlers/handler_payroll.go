package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/arp_backend/internal/core/ports/services"
	"github.com/SscSPs/arp_backend/internal/dto"
	"github.com/SscSPs/arp_backend/internal/ingest"
	"github.com/SscSPs/arp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// payrollHandler handles HTTP requests related to payroll cost files.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
	maxUploadBytes int64
}

// newPayrollHandler creates a new payrollHandler.
func newPayrollHandler(ps portssvc.PayrollSvcFacade, maxUploadBytes int64) *payrollHandler {
	return &payrollHandler{
		payrollService: ps,
		maxUploadBytes: maxUploadBytes,
	}
}

// RegisterPayrollRoutes registers routes related to payroll cost files.
func RegisterPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade, opts UploadOptions) {
	h := newPayrollHandler(payrollService, opts.MaxUploadBytes)

	payroll := rg.Group("/payroll")
	{
		payroll.POST("/upload", opts.chain(h.uploadPayroll)...)
		payroll.POST("/upload-couts-salariaux", opts.chain(h.uploadPayroll)...)
		payroll.GET("/files", h.listFiles)
		payroll.GET("/files/:file_id", h.getFile)
		payroll.PUT("/files/:file_id", h.updateFile)
		payroll.DELETE("/files/:file_id", h.deleteFile)
		payroll.GET("/files/:file_id/diagnostics", h.getDiagnostics)
	}
}

// uploadPayroll godoc
// @Summary Upload a payroll cost file
// @Description Stores a payroll export (.xlsx or .csv), or appends its rows to an existing file
// @Tags payroll
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Payroll export"
// @Param   append_to_file_id formData string false "Existing file to append to"
// @Success 200 {object} dto.PayrollUploadResponse
// @Failure 400 {object} map[string]string "Unsupported format or empty file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Destination file not found"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 500 {object} map[string]string "Failed to store payroll file"
// @Security BearerAuth
// @Router /payroll/upload [post]
// @Router /payroll/upload-couts-salariaux [post]
func (h *payrollHandler) uploadPayroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	filename, sheet, err := readUploadedSheet(c, h.maxUploadBytes)
	if err != nil {
		abortWithError(c, logger, err, "Failed to read payroll file")
		return
	}
	appendTo := c.PostForm("append_to_file_id")
	logger = logger.With(slog.String("filename", filename))

	records, matches := ingest.PayrollRecords(sheet)
	for _, m := range matches {
		if m.Kind == ingest.MatchMissing {
			logger.Warn("Payroll column not found", slog.String("column", m.Column))
		} else if m.Kind != ingest.MatchExact {
			logger.Debug("Payroll column matched", slog.String("column", m.Column), slog.String("source", m.Source), slog.String("kind", string(m.Kind)))
		}
	}

	upload, appended, err := h.payrollService.UploadPayroll(c.Request.Context(), filename, records, appendTo, userID)
	if err != nil {
		abortWithError(c, logger, err, "Failed to store payroll file")
		return
	}

	logger.Info("Payroll file stored", slog.String("file_id", upload.UploadID), slog.Bool("appended", appended))
	c.JSON(http.StatusOK, dto.PayrollUploadResponse{
		Success:      true,
		FileID:       upload.UploadID,
		Appended:     appended,
		TotalRecords: upload.TotalRecords,
	})
}

// listFiles godoc
// @Summary List payroll files
// @Tags payroll
// @Produce  json
// @Success 200 {object} dto.ListPayrollFilesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list payroll files"
// @Security BearerAuth
// @Router /payroll/files [get]
func (h *payrollHandler) listFiles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	uploads, err := h.payrollService.ListUploads(c.Request.Context())
	if err != nil {
		abortWithError(c, logger, err, "Failed to list payroll files")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPayrollFilesResponse(uploads))
}

// getFile godoc
// @Summary Get a payroll file
// @Tags payroll
// @Produce  json
// @Param   file_id path string true "Payroll file ID"
// @Success 200 {object} dto.PayrollFileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payroll file not found"
// @Failure 500 {object} map[string]string "Failed to retrieve payroll file"
// @Security BearerAuth
// @Router /payroll/files/{file_id} [get]
func (h *payrollHandler) getFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fileID := c.Param("file_id")

	upload, err := h.payrollService.GetUpload(c.Request.Context(), fileID)
	if err != nil {
		abortWithError(c, logger.With(slog.String("file_id", fileID)), err, "Failed to retrieve payroll file")
		return
	}

	c.JSON(http.StatusOK, dto.ToPayrollFileResponse(upload))
}

// updateFile godoc
// @Summary Replace the rows of a payroll file
// @Tags payroll
// @Accept  json
// @Produce  json
// @Param   file_id path string true "Payroll file ID"
// @Param   records body dto.UpdatePayrollRequest true "Replacement rows"
// @Success 200 {object} dto.PayrollFileResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payroll file not found"
// @Failure 500 {object} map[string]string "Failed to update payroll file"
// @Security BearerAuth
// @Router /payroll/files/{file_id} [put]
func (h *payrollHandler) updateFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fileID := c.Param("file_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePayroll", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	upload, err := h.payrollService.UpdateUpload(c.Request.Context(), fileID, req.Data, userID)
	if err != nil {
		abortWithError(c, logger.With(slog.String("file_id", fileID)), err, "Failed to update payroll file")
		return
	}

	c.JSON(http.StatusOK, dto.ToPayrollFileResponse(upload))
}

// deleteFile godoc
// @Summary Delete a payroll file
// @Tags payroll
// @Produce  json
// @Param   file_id path string true "Payroll file ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payroll file not found"
// @Failure 500 {object} map[string]string "Failed to delete payroll file"
// @Security BearerAuth
// @Router /payroll/files/{file_id} [delete]
func (h *payrollHandler) deleteFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fileID := c.Param("file_id")

	if err := h.payrollService.DeleteUpload(c.Request.Context(), fileID); err != nil {
		abortWithError(c, logger.With(slog.String("file_id", fileID)), err, "Failed to delete payroll file")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Payroll file deleted"})
}

// getDiagnostics godoc
// @Summary Diagnose a payroll file
// @Description Shows the periods and P / HP classification the aggregator reads from a payroll file
// @Tags payroll
// @Produce  json
// @Param   file_id path string true "Payroll file ID"
// @Success 200 {object} domain.PayrollDiagnostics
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payroll file not found"
// @Failure 500 {object} map[string]string "Failed to diagnose payroll file"
// @Security BearerAuth
// @Router /payroll/files/{file_id}/diagnostics [get]
func (h *payrollHandler) getDiagnostics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fileID := c.Param("file_id")

	d, err := h.payrollService.Diagnostics(c.Request.Context(), fileID)
	if err != nil {
		abortWithError(c, logger.With(slog.String("file_id", fileID)), err, "Failed to diagnose payroll file")
		return
	}

	c.JSON(http.StatusOK, d)
}
