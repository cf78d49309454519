package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll column names, in the order the payroll export lays them out.
const (
	ColumnEmployeeID          = "Matricule"
	ColumnEmployee            = "Salarié"
	ColumnService             = "Service"
	ColumnProductionFlag      = "P / HP"
	ColumnMonth               = "Mois"
	ColumnTheoreticalHours    = "Heures théoriques"
	ColumnNormalHours         = "Heures normales"
	ColumnOvertimeHours       = "Heures majorées"
	ColumnTotalHours          = "Total heures"
	ColumnHeadcount           = "Effectif"
	ColumnPaidLeaveTaken      = "CP Pris"
	ColumnRTTTaken            = "RTT/Réci Pris"
	ColumnActualHours         = "Heures réelles"
	ColumnGrossPay            = "Brut"
	ColumnEmployeeCharges     = "Charges salariales"
	ColumnEmployerCharges     = "Charges patronales"
	ColumnEmployerChargesRate = "% charge patronales"
	ColumnSupplements         = "Suppléments coût global"
	ColumnTotalCost           = "Coût global"
	ColumnAverageHourlyCost   = "Coût hora moyen"
	ColumnWithholdingTax      = "PAS"
	ColumnNetPay              = "Net à payer"
	ColumnFlatDays            = "Forfait jour"
	ColumnHireDate            = "Entrée"
	ColumnLeaveDate           = "Sortie"
	ColumnJobTitle            = "Emploi"
	ColumnEstablishment       = "Etablissement"
)

// PayrollColumns is the canonical column order of a stored payroll record.
var PayrollColumns = []string{
	ColumnEmployeeID, ColumnEmployee, ColumnService, ColumnProductionFlag, ColumnMonth,
	ColumnTheoreticalHours, ColumnNormalHours, ColumnOvertimeHours, ColumnTotalHours,
	ColumnHeadcount, ColumnPaidLeaveTaken, ColumnRTTTaken, ColumnActualHours, ColumnGrossPay,
	ColumnEmployeeCharges, ColumnEmployerCharges, ColumnEmployerChargesRate,
	ColumnSupplements, ColumnTotalCost, ColumnAverageHourlyCost, ColumnWithholdingTax,
	ColumnNetPay, ColumnFlatDays, ColumnHireDate, ColumnLeaveDate, ColumnJobTitle, ColumnEstablishment,
}

// PayrollRecord is one employee-month row of a payroll cost export.
type PayrollRecord struct {
	EmployeeID          Cell `json:"Matricule"`
	Employee            Cell `json:"Salarié"`
	Service             Cell `json:"Service"`
	ProductionFlag      Cell `json:"P / HP"`
	Month               Cell `json:"Mois"`
	TheoreticalHours    Cell `json:"Heures théoriques"`
	NormalHours         Cell `json:"Heures normales"`
	OvertimeHours       Cell `json:"Heures majorées"`
	TotalHours          Cell `json:"Total heures"`
	Headcount           Cell `json:"Effectif"`
	PaidLeaveTaken      Cell `json:"CP Pris"`
	RTTTaken            Cell `json:"RTT/Réci Pris"`
	ActualHours         Cell `json:"Heures réelles"`
	GrossPay            Cell `json:"Brut"`
	EmployeeCharges     Cell `json:"Charges salariales"`
	EmployerCharges     Cell `json:"Charges patronales"`
	EmployerChargesRate Cell `json:"% charge patronales"`
	Supplements         Cell `json:"Suppléments coût global"`
	TotalCost           Cell `json:"Coût global"`
	AverageHourlyCost   Cell `json:"Coût hora moyen"`
	WithholdingTax      Cell `json:"PAS"`
	NetPay              Cell `json:"Net à payer"`
	FlatDays            Cell `json:"Forfait jour"`
	HireDate            Cell `json:"Entrée"`
	LeaveDate           Cell `json:"Sortie"`
	JobTitle            Cell `json:"Emploi"`
	Establishment       Cell `json:"Etablissement"`
}

// Field returns a pointer to the cell stored under the given column name, or
// nil when the name is not a payroll column.
func (r *PayrollRecord) Field(column string) *Cell {
	switch column {
	case ColumnEmployeeID:
		return &r.EmployeeID
	case ColumnEmployee:
		return &r.Employee
	case ColumnService:
		return &r.Service
	case ColumnProductionFlag:
		return &r.ProductionFlag
	case ColumnMonth:
		return &r.Month
	case ColumnTheoreticalHours:
		return &r.TheoreticalHours
	case ColumnNormalHours:
		return &r.NormalHours
	case ColumnOvertimeHours:
		return &r.OvertimeHours
	case ColumnTotalHours:
		return &r.TotalHours
	case ColumnHeadcount:
		return &r.Headcount
	case ColumnPaidLeaveTaken:
		return &r.PaidLeaveTaken
	case ColumnRTTTaken:
		return &r.RTTTaken
	case ColumnActualHours:
		return &r.ActualHours
	case ColumnGrossPay:
		return &r.GrossPay
	case ColumnEmployeeCharges:
		return &r.EmployeeCharges
	case ColumnEmployerCharges:
		return &r.EmployerCharges
	case ColumnEmployerChargesRate:
		return &r.EmployerChargesRate
	case ColumnSupplements:
		return &r.Supplements
	case ColumnTotalCost:
		return &r.TotalCost
	case ColumnAverageHourlyCost:
		return &r.AverageHourlyCost
	case ColumnWithholdingTax:
		return &r.WithholdingTax
	case ColumnNetPay:
		return &r.NetPay
	case ColumnFlatDays:
		return &r.FlatDays
	case ColumnHireDate:
		return &r.HireDate
	case ColumnLeaveDate:
		return &r.LeaveDate
	case ColumnJobTitle:
		return &r.JobTitle
	case ColumnEstablishment:
		return &r.Establishment
	}
	return nil
}

// PayrollUpload is a stored payroll file with its parsed records.
type PayrollUpload struct {
	UploadID     string          `json:"uploadID"`
	Filename     string          `json:"filename"`
	Records      []PayrollRecord `json:"records"`
	TotalRecords int             `json:"totalRecords"`
	UploadedAt   time.Time       `json:"uploadedAt"`
	UpdatedAt    *time.Time      `json:"updatedAt,omitempty"`
	UploadedBy   string          `json:"uploadedBy"`
}

// PayrollPeriodTotals holds one upload's raw sums for one period, split by
// production / administration. It is the precomputed index the aggregator
// reads instead of rescanning every stored record.
type PayrollPeriodTotals struct {
	UploadID              string
	Period                string
	ProductionGross       decimal.Decimal
	ProductionCharges     decimal.Decimal
	ProductionSupplements decimal.Decimal
	AdminGross            decimal.Decimal
	AdminCharges          decimal.Decimal
	AdminSupplements      decimal.Decimal
}

// PayrollAggregate is the payroll cost block of an analysis.
type PayrollAggregate struct {
	Period                string `json:"mois_annee" yaml:"mois_annee"`
	ProductionGross       Amount `json:"personnel_production" yaml:"personnel_production" swaggertype:"number"`
	ProductionCharges     Amount `json:"charges_patronales_p" yaml:"charges_patronales_p" swaggertype:"number"`
	ProductionSupplements Amount `json:"supplements_p" yaml:"supplements_p" swaggertype:"number"`
	AdminGross            Amount `json:"personnel_adm" yaml:"personnel_adm" swaggertype:"number"`
	AdminCharges          Amount `json:"charges_patronales_hp" yaml:"charges_patronales_hp" swaggertype:"number"`
	AdminSupplements      Amount `json:"supplements_hp" yaml:"supplements_hp" swaggertype:"number"`
	TotalProduction       Amount `json:"total_production" yaml:"total_production" swaggertype:"number"`
	TotalAdmin            Amount `json:"total_adm" yaml:"total_adm" swaggertype:"number"`
}

// PayrollSampleRow is a raw-versus-normalized view of one payroll row.
type PayrollSampleRow struct {
	Employee         string `json:"salarie"`
	Service          string `json:"service"`
	RawFlag          string `json:"p_hp_raw"`
	Classification   string `json:"p_hp_normalized"`
	GrossPay         string `json:"brut"`
	EmployerCharges  string `json:"charges_patronales"`
	RawMonth         string `json:"mois"`
	NormalizedPeriod string `json:"mois_normalise"`
}

// PayrollDiagnostics describes how an upload's rows are read by the aggregator.
type PayrollDiagnostics struct {
	UploadID            string             `json:"id"`
	Filename            string             `json:"filename"`
	UploadedAt          time.Time          `json:"upload_date"`
	AvailableMonths     []string           `json:"available_months"`
	TotalRows           int                `json:"total_rows"`
	ProductionCount     int                `json:"production_count"`
	AdministrationCount int                `json:"administration_count"`
	SampleValues        []string           `json:"sample_p_hp_values"`
	SampleRows          []PayrollSampleRow `json:"sample_rows"`
}
