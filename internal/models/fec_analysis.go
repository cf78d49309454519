package models

import "time"

// FECAnalysis is a row of fec_analyses. Results holds the analysis JSON
// exactly as it was returned to the uploader.
type FECAnalysis struct {
	AnalysisID string    `db:"analysis_id"`
	Filename   string    `db:"filename"`
	UploadDate time.Time `db:"upload_date"`
	UserID     string    `db:"user_id"`
	Period     string    `db:"period"`
	Results    string    `db:"results"`
}
