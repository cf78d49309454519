package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/arp_backend/internal/core/domain"
)

// AnalysisResponse is a stored analysis. Results carries the stored JSON
// document verbatim.
type AnalysisResponse struct {
	ID         string          `json:"id"`
	Filename   string          `json:"filename"`
	UploadDate time.Time       `json:"upload_date"`
	UserID     string          `json:"user_id"`
	Results    json.RawMessage `json:"results" swaggertype:"object"`
}

// AnalysisUploadResponse is returned once a FEC file has been analyzed.
type AnalysisUploadResponse struct {
	Status   string          `json:"status"`
	Filename string          `json:"filename"`
	Data     json.RawMessage `json:"data" swaggertype:"object"`
}

// AnalysisExportResponse is the downloadable form of an analysis.
type AnalysisExportResponse struct {
	Filename   string          `json:"filename"`
	UploadDate time.Time       `json:"upload_date"`
	Results    json.RawMessage `json:"results" swaggertype:"object"`
}

// RecentAnalysis is one entry of the statistics listing.
type RecentAnalysis struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	UploadDate time.Time `json:"upload_date"`
}

// StatisticsResponse summarizes the analyses of the current user.
type StatisticsResponse struct {
	TotalAnalyses  int              `json:"total_analyses"`
	RecentAnalyses []RecentAnalysis `json:"recent_analyses"`
}

// StatusResponse acknowledges an operation without a payload.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// storedJSON guards against an empty stored document, which is not valid JSON.
func storedJSON(s string) json.RawMessage {
	if s == "" {
		return json.RawMessage("{}")
	}
	return json.RawMessage(s)
}

// ToAnalysisResponse converts a domain.FECAnalysis to AnalysisResponse DTO
func ToAnalysisResponse(a *domain.FECAnalysis) AnalysisResponse {
	return AnalysisResponse{
		ID:         a.AnalysisID,
		Filename:   a.Filename,
		UploadDate: a.UploadDate,
		UserID:     a.UserID,
		Results:    storedJSON(a.Results),
	}
}

// ToAnalysisListResponse converts analyses to their DTOs, never returning nil.
func ToAnalysisListResponse(analyses []domain.FECAnalysis) []AnalysisResponse {
	out := make([]AnalysisResponse, len(analyses))
	for i := range analyses {
		out[i] = ToAnalysisResponse(&analyses[i])
	}
	return out
}

// ToAnalysisUploadResponse builds the upload response from a fresh analysis.
func ToAnalysisUploadResponse(a *domain.FECAnalysis) AnalysisUploadResponse {
	return AnalysisUploadResponse{
		Status:   "success",
		Filename: a.Filename,
		Data:     storedJSON(a.Results),
	}
}

// ToAnalysisExportResponse converts an analysis to its export document.
func ToAnalysisExportResponse(a *domain.FECAnalysis) AnalysisExportResponse {
	return AnalysisExportResponse{
		Filename:   a.Filename,
		UploadDate: a.UploadDate,
		Results:    storedJSON(a.Results),
	}
}

// ToStatisticsResponse converts domain statistics to StatisticsResponse DTO
func ToStatisticsResponse(s *domain.FECStatistics) StatisticsResponse {
	recent := make([]RecentAnalysis, len(s.Recent))
	for i, a := range s.Recent {
		recent[i] = RecentAnalysis{ID: a.AnalysisID, Filename: a.Filename, UploadDate: a.UploadDate}
	}
	return StatisticsResponse{TotalAnalyses: s.TotalAnalyses, RecentAnalyses: recent}
}
