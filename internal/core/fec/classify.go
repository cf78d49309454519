package fec

import "strings"

// Classification is the production / administration split of a payroll row.
type Classification string

const (
	Production     Classification = "PRODUCTION"
	Administration Classification = "ADMINISTRATION"
)

var productionKeywords = []string{
	"P", "PROD", "PRODUCTION", "PRODUCTIF", "PRODUCTEUR",
	"ATELIER", "FABRICATION", "USINE", "TECHNIQUE", "OPERATEUR",
}

var administrationKeywords = []string{
	"HP", "HORS PROD", "HORS PRODUCTION", "ADMINISTRATION", "ADMIN",
	"ADMINISTRATIF", "BUREAU", "COMMERCIAL", "VENTE", "COMPTABILITE",
	"DIRECTION", "MANAGEMENT", "SECRETARIAT", "RH", "QUALITE",
}

type matchKind int

const (
	matchExact matchKind = iota
	matchContains
	matchPrefix
)

type phpRule struct {
	kind     matchKind
	keywords []string
	result   Classification
}

// phpRules are evaluated top to bottom; the first match wins. Exact matches
// come before substring matches so "HP" is never caught by the "P" prefix.
var phpRules = []phpRule{
	{matchExact, productionKeywords, Production},
	{matchExact, administrationKeywords, Administration},
	{matchContains, productionKeywords, Production},
	{matchContains, administrationKeywords, Administration},
	{matchPrefix, []string{"P"}, Production},
}

func (r phpRule) matches(value string) bool {
	for _, kw := range r.keywords {
		switch r.kind {
		case matchExact:
			if value == kw {
				return true
			}
		case matchContains:
			if strings.Contains(value, kw) {
				return true
			}
		case matchPrefix:
			if strings.HasPrefix(value, kw) {
				return true
			}
		}
	}
	return false
}

// ClassifyPHP maps a free-text "P / HP" value to a classification. Empty or
// unrecognised values are Administration.
func ClassifyPHP(raw string) Classification {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == "" {
		return Administration
	}
	for _, rule := range phpRules {
		if rule.matches(value) {
			return rule.result
		}
	}
	return Administration
}
