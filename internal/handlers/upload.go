package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/arp_backend/internal/apperrors"
	"github.com/SscSPs/arp_backend/internal/ingest"
	"github.com/gin-gonic/gin"
)

// UploadOptions configures the upload routes.
type UploadOptions struct {
	// MaxUploadBytes caps the request body of an upload; zero disables it.
	MaxUploadBytes int64
	// Middleware runs before upload handlers only, such as rate limiting.
	Middleware []gin.HandlerFunc
}

func (o UploadOptions) chain(h gin.HandlerFunc) []gin.HandlerFunc {
	handlers := make([]gin.HandlerFunc, 0, len(o.Middleware)+1)
	handlers = append(handlers, o.Middleware...)
	return append(handlers, h)
}

// readUploadedSheet reads the multipart "file" field of the request.
func readUploadedSheet(c *gin.Context, maxBytes int64) (string, ingest.Sheet, error) {
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if statusForError(err) == http.StatusRequestEntityTooLarge {
			return "", ingest.Sheet{}, err
		}
		return "", ingest.Sheet{}, apperrors.NewValidationFailedError("multipart field 'file' is required")
	}
	if !ingest.SupportedExtension(fileHeader.Filename) {
		return fileHeader.Filename, ingest.Sheet{}, fmt.Errorf("%w: use .xlsx or .csv", ingest.ErrUnsupportedFormat)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return fileHeader.Filename, ingest.Sheet{}, fmt.Errorf("%w: %v", ingest.ErrUnreadable, err)
	}
	defer f.Close()

	sheet, err := ingest.ReadSheet(fileHeader.Filename, f)
	return fileHeader.Filename, sheet, err
}
