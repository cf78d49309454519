package dto

import (
	"time"

	"github.com/SscSPs/arp_backend/internal/core/domain"
)

// PayrollUploadResponse is returned after a payroll file was stored.
type PayrollUploadResponse struct {
	Success      bool   `json:"success"`
	FileID       string `json:"file_id"`
	Appended     bool   `json:"appended"`
	TotalRecords int    `json:"total_records"`
}

// PayrollFileInfo describes a stored payroll file without its records.
type PayrollFileInfo struct {
	ID           string     `json:"id"`
	Filename     string     `json:"filename"`
	UploadedAt   time.Time  `json:"uploaded_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
	TotalRecords int        `json:"total_records"`
}

// ListPayrollFilesResponse lists the stored payroll files.
type ListPayrollFilesResponse struct {
	Success bool              `json:"success"`
	Files   []PayrollFileInfo `json:"files"`
}

// PayrollFileResponse is a stored payroll file with its records.
type PayrollFileResponse struct {
	Success  bool                   `json:"success"`
	Data     []domain.PayrollRecord `json:"data"`
	FileInfo PayrollFileInfo        `json:"file_info"`
}

// UpdatePayrollRequest replaces the records of a payroll file.
type UpdatePayrollRequest struct {
	Data []domain.PayrollRecord `json:"data" binding:"required"`
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToPayrollFileInfo converts a domain.PayrollUpload to PayrollFileInfo DTO
func ToPayrollFileInfo(u *domain.PayrollUpload) PayrollFileInfo {
	return PayrollFileInfo{
		ID:           u.UploadID,
		Filename:     u.Filename,
		UploadedAt:   u.UploadedAt,
		UpdatedAt:    u.UpdatedAt,
		TotalRecords: u.TotalRecords,
	}
}

// ToListPayrollFilesResponse converts uploads to the listing DTO.
func ToListPayrollFilesResponse(uploads []domain.PayrollUpload) ListPayrollFilesResponse {
	files := make([]PayrollFileInfo, len(uploads))
	for i := range uploads {
		files[i] = ToPayrollFileInfo(&uploads[i])
	}
	return ListPayrollFilesResponse{Success: true, Files: files}
}

// ToPayrollFileResponse converts an upload with its records to the DTO.
func ToPayrollFileResponse(u *domain.PayrollUpload) PayrollFileResponse {
	records := u.Records
	if records == nil {
		records = []domain.PayrollRecord{}
	}
	return PayrollFileResponse{Success: true, Data: records, FileInfo: ToPayrollFileInfo(u)}
}
