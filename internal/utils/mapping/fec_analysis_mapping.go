package mapping

import (
	"github.com/SscSPs/arp_backend/internal/core/domain"
	"github.com/SscSPs/arp_backend/internal/models"
)

// ToModelFECAnalysis converts a domain FECAnalysis to a model FECAnalysis
func ToModelFECAnalysis(d domain.FECAnalysis) models.FECAnalysis {
	return models.FECAnalysis{
		AnalysisID: d.AnalysisID,
		Filename:   d.Filename,
		UploadDate: d.UploadDate,
		UserID:     d.UserID,
		Period:     d.Period,
		Results:    d.Results,
	}
}

// ToDomainFECAnalysis converts a model FECAnalysis to a domain FECAnalysis
func ToDomainFECAnalysis(m models.FECAnalysis) domain.FECAnalysis {
	return domain.FECAnalysis{
		AnalysisID: m.AnalysisID,
		Filename:   m.Filename,
		UploadDate: m.UploadDate,
		UserID:     m.UserID,
		Period:     m.Period,
		Results:    m.Results,
	}
}

// ToDomainFECAnalysisSlice converts a slice of model analyses to domain analyses
func ToDomainFECAnalysisSlice(ms []models.FECAnalysis) []domain.FECAnalysis {
	ds := make([]domain.FECAnalysis, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFECAnalysis(m)
	}
	return ds
}
