package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/arp_backend/internal/apperrors"
	"github.com/SscSPs/arp_backend/internal/ingest"
	"github.com/gin-gonic/gin"
)

// statusForError maps service and ingestion errors to HTTP status codes.
func statusForError(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, ingest.ErrUnsupportedFormat),
		errors.Is(err, ingest.ErrMissingColumn),
		errors.Is(err, ingest.ErrEmptySheet),
		errors.Is(err, ingest.ErrUnreadable):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes the JSON error body for err. Client errors carry the
// error text, server errors only the generic message.
func abortWithError(c *gin.Context, logger *slog.Logger, err error, message string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(message, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": message})
		return
	}
	logger.Warn(message, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}
