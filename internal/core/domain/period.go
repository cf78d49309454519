package domain

// SerialDate is the calendar date behind a spreadsheet day serial.
type SerialDate struct {
	Date  string `json:"date_calculated" yaml:"date_calculated"`
	Day   int    `json:"day" yaml:"day"`
	Month int    `json:"month" yaml:"month"`
	Year  int    `json:"year" yaml:"year"`
}

// PeriodProbe shows how one raw date value is read by the ledger and the
// payroll period normalizers.
type PeriodProbe struct {
	Input         string      `json:"excel_serial_input" yaml:"input"`
	LedgerPeriod  string      `json:"fec_analysis_result" yaml:"ledger_period"`
	PayrollPeriod string      `json:"couts_salariaux_result" yaml:"payroll_period"`
	SerialDate    *SerialDate `json:"manual_calculation" yaml:"serial_date,omitempty"`
	Matches       bool        `json:"matches" yaml:"matches"`
}
