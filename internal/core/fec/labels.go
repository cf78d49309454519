package fec

import "strings"

// LabelFlag marks the segments and policies an account label takes part in.
type LabelFlag uint16

const (
	// Direct labels feed the direct-charges segment.
	Direct LabelFlag = 1 << iota
	// Indirect labels feed the indirect-charges segment.
	Indirect
	// Manual labels are entered by hand and never computed from the ledger.
	Manual
	// PayrollFed labels are manual but filled from payroll, so they get no
	// placeholder line.
	PayrollFed
	// OtherExcluded labels are left out of "AUTRES PRODUITS ET CHARGES".
	OtherExcluded
	// Tax labels feed the taxes segment.
	Tax
	// Personnel labels feed the admin-personnel segment.
	Personnel
)

// LabelRule binds one uppercase account label to its flags.
type LabelRule struct {
	Label string
	Flags LabelFlag
}

// LabelBook is the immutable label configuration of the segmentation engine.
// Rule order matters: placeholders are emitted in book order.
type LabelBook struct {
	rules []LabelRule
	index map[string]LabelFlag
}

// NewLabelBook builds a book from rules. A label listed twice has its flags
// merged and keeps its first position.
func NewLabelBook(rules []LabelRule) LabelBook {
	b := LabelBook{index: make(map[string]LabelFlag, len(rules))}
	for _, r := range rules {
		label := strings.ToUpper(strings.TrimSpace(r.Label))
		if _, seen := b.index[label]; !seen {
			b.rules = append(b.rules, LabelRule{Label: label})
		}
		b.index[label] |= r.Flags
	}
	for i := range b.rules {
		b.rules[i].Flags = b.index[b.rules[i].Label]
	}
	return b
}

// Flags returns the flags of an uppercase, trimmed label.
func (b LabelBook) Flags(label string) LabelFlag {
	return b.index[label]
}

// Has reports whether label carries every bit of flag.
func (b LabelBook) Has(label string, flag LabelFlag) bool {
	return b.index[label]&flag == flag
}

// Labels lists, in book order, the labels carrying every bit of flag.
func (b LabelBook) Labels(flag LabelFlag) []string {
	var out []string
	for _, r := range b.rules {
		if r.Flags&flag == flag {
			out = append(out, r.Label)
		}
	}
	return out
}

// Placeholders lists the manual labels that get a zero line for hand entry.
func (b LabelBook) Placeholders() []string {
	var out []string
	for _, r := range b.rules {
		if r.Flags&Manual != 0 && r.Flags&PayrollFed == 0 {
			out = append(out, r.Label)
		}
	}
	return out
}

// Shorthands for the flag sets that recur in the default book.
const (
	indirectManual     = Indirect | Manual
	indirectManualExcl = Indirect | Manual | OtherExcluded
	indirectExcl       = Indirect | OtherExcluded
	directExcl         = Direct | OtherExcluded
)

var defaultLabelRules = []LabelRule{
	// Hand-entered indirect charges, in the order their placeholders appear.
	{"IMPOTS ET TAXES", indirectManual | Tax},
	{"VAR.CP", indirectManual | Direct},
	{"TRANSFERT DE CHARGES", indirectManual},
	{"FRAIS FACTURATION FOURNISSEURS", indirectManualExcl},
	{"ASSURANCES", indirectManualExcl},
	{"ASSURANCES ADI", indirectManualExcl},
	{"AXA HOMME CLE", indirectManualExcl},
	{"ABONNEMENT-FORMATION", indirectManualExcl},
	{"PRESTATIONS GAG", indirectManualExcl},
	{"PRESTATIONS CONSULTING", indirectManualExcl},
	{"HONORAIRES COMPTABLES", indirectManualExcl},
	{"HONORAIRES JURIDIQUES", indirectManualExcl},
	{"HONORAIRES DIVERS", indirectManualExcl},
	{"EAU", indirectManualExcl},

	{"PERSONNEL ADM &HORS PRO.", indirectManual | PayrollFed | Personnel},
	{"CHARGES SOCIALES PATRONALES HP", indirectManual | PayrollFed | Personnel},

	{"ELECTRICITE", directExcl},
	{"FOURN.ENT.&P.OUT", directExcl},
	{"MATERIEL ET OUTILLAGE INTRACOM", directExcl},
	{"LOCATION AIR LIQUIDE", directExcl},
	{"EVACUATION DECHETS", directExcl},
	{"PERSONNEL EXTERIEUR A L' ENTREPRISE", directExcl},
	{"PERSONNEL DE PRODUCTION", Direct},
	{"CHARGES SOCIALES PATRONALES P", Direct},
	{"TRANSPORTS SUR ACHATS", directExcl},
	{"PORTS SUR VENTES", directExcl},

	{"GAZ", indirectExcl},
	{"CARB.LUBRIF.", indirectExcl},
	{"FOURNITURES ADMINISTRATIVES", indirectExcl},
	{"VETEMENTS DE TRAVAIL", indirectExcl},
	{"LOCATION VEHICULES", indirectExcl},
	{"CREDIT BAIL TOUR HASS ST20Y OCC", indirectExcl},
	{"LOCATION MATERIEL SETIN", indirectExcl},
	{"LOCAT.IMMOBIL.", indirectExcl},
	{"LOCATIONS DIVERSES", indirectExcl},
	{"LOCATION COPIEUR  RICOH", indirectExcl},
	{"LOCATION LOGICIEL", indirectExcl},
	{"LOCATION TOYOTA FK-120-KZ", indirectExcl},
	{"CHARGES LOCATIVES", indirectExcl},
	{"ENTRETIEN BIENS IMMOBILIERS", indirectExcl},
	{"ENTRETIEN MATERIEL ET OUTILLAGE", indirectExcl},
	{"ENT.MAT.TRANSP.", indirectExcl},
	{"ENTRETIEN MATERIEL DE BUREAU", indirectExcl},
	{"MAINTENANCE INFORMATIQUE", indirectExcl},
	{"MAINTENANCE", indirectExcl},
	{"FRAIS D'ACTES & CONTENTIEUX", indirectExcl},
	{"ANNONCES ET INSERTIONS", indirectExcl},
	{"FRAIS /EFFETS", indirectExcl},
	{"FRAIS DE DEPLACEMENTS", indirectExcl},
	{"RECEPTIONS", indirectExcl},
	{"TELEPHONE", indirectExcl},
	{"AFFRANCHISSEMENT", indirectExcl},
	{"SERVICES BANCAIRES", indirectExcl},
	{"COTISATIONS", indirectExcl},
	{"AUTRES PRODUITS ET CHARGES", Indirect},

	{"TAXE FONCIERE", Tax},
	{"TAXE D'HABITATION", Tax},
	{"COTISATION FONCIERE", Tax},
	{"COTISATION VALEUR AJOUTEE", Tax},
	{"CVAE", Tax},
	{"CET", Tax},

	{"PERSONNEL ADMINISTRATIF", Personnel},
	{"PERSONNEL HORS PRODUCTION", Personnel},
	{"CHARGES SOCIALES HP", Personnel},
}

// DefaultLabelBook returns the label configuration used for FEC uploads.
func DefaultLabelBook() LabelBook {
	return NewLabelBook(defaultLabelRules)
}
