package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/arp_backend/internal/apperrors"
	"github.com/SscSPs/arp_backend/internal/ingest"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: apperrors.NewValidationFailedError("empty"), want: http.StatusBadRequest},
		{name: "unsupported format", err: fmt.Errorf("%w: .xls", ingest.ErrUnsupportedFormat), want: http.StatusBadRequest},
		{name: "missing column", err: fmt.Errorf("%w: Debit", ingest.ErrMissingColumn), want: http.StatusBadRequest},
		{name: "empty sheet", err: ingest.ErrEmptySheet, want: http.StatusBadRequest},
		{name: "unreadable", err: ingest.ErrUnreadable, want: http.StatusBadRequest},
		{name: "not found", err: apperrors.NewNotFoundError("analysis not found"), want: http.StatusNotFound},
		{name: "forbidden", err: apperrors.ErrForbidden, want: http.StatusForbidden},
		{name: "conflict", err: apperrors.NewConflictError("exists"), want: http.StatusConflict},
		{name: "too large", err: fmt.Errorf("multipart: %w", &http.MaxBytesError{Limit: 10}), want: http.StatusRequestEntityTooLarge},
		{name: "other", err: errors.New("connection reset"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}
