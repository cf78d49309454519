package domain

import "time"

// PeriodTotal is a single-total segment (production, treasury).
type PeriodTotal struct {
	Title  string `json:"titre" yaml:"titre"`
	Period string `json:"mois_annee" yaml:"mois_annee"`
	Total  Amount `json:"total" yaml:"total"`
}

// PurchasesTotal is the consumed-purchases segment.
type PurchasesTotal struct {
	Title          string `json:"titre" yaml:"titre"`
	Period         string `json:"mois_annee" yaml:"mois_annee"`
	Total          Amount `json:"total" yaml:"total"`
	RawMaterials   Amount `json:"matieres_premieres" yaml:"matieres_premieres"`
	Subcontracting Amount `json:"sous_traitance" yaml:"sous_traitance"`
}

// ChargeLine is one line of a charge-list segment.
type ChargeLine struct {
	AccountLabel  string `json:"CompteLib" yaml:"CompteLib"`
	AccountNumber string `json:"CompteNum" yaml:"CompteNum"`
	Amount        Amount `json:"montant" yaml:"montant"`
	Period        string `json:"mois_annee" yaml:"mois_annee"`
}

// AnalysisResult is the full breakdown of one FEC upload. Field names are read
// by the presentation layer.
type AnalysisResult struct {
	Production      PeriodTotal      `json:"production" yaml:"production"`
	Purchases       PurchasesTotal   `json:"achats_consommes" yaml:"achats_consommes"`
	DirectCharges   []ChargeLine     `json:"charges_directes" yaml:"charges_directes"`
	IndirectCharges []ChargeLine     `json:"charges_indirectes" yaml:"charges_indirectes"`
	Taxes           []ChargeLine     `json:"impots_et_taxes" yaml:"impots_et_taxes"`
	AdminPersonnel  []ChargeLine     `json:"personnel_adm_hors_pro" yaml:"personnel_adm_hors_pro"`
	Payroll         PayrollAggregate `json:"couts_salariaux" yaml:"couts_salariaux"`
	Treasury        PeriodTotal      `json:"tresorerie" yaml:"tresorerie"`
}

// FECAnalysis is a persisted analysis. Results holds the serialized
// AnalysisResult exactly as it was produced.
type FECAnalysis struct {
	AnalysisID string
	Filename   string
	UploadDate time.Time
	UserID     string
	Period     string
	Results    string
}

// FECStatistics summarizes a user's analyses.
type FECStatistics struct {
	TotalAnalyses int
	Recent        []FECAnalysis
}
