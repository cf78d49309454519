package fec_test

import (
	"testing"

	"github.com/SscSPs/arp_backend/internal/core/fec"
	"github.com/stretchr/testify/assert"
)

func TestDefaultLabelBook_Placeholders(t *testing.T) {
	assert.Equal(t, []string{
		"IMPOTS ET TAXES", "VAR.CP", "TRANSFERT DE CHARGES", "FRAIS FACTURATION FOURNISSEURS",
		"ASSURANCES", "ASSURANCES ADI", "AXA HOMME CLE", "ABONNEMENT-FORMATION",
		"PRESTATIONS GAG", "PRESTATIONS CONSULTING", "HONORAIRES COMPTABLES",
		"HONORAIRES JURIDIQUES", "HONORAIRES DIVERS", "EAU",
	}, fec.DefaultLabelBook().Placeholders())
}

func TestDefaultLabelBook_Sets(t *testing.T) {
	book := fec.DefaultLabelBook()

	assert.Len(t, book.Labels(fec.Direct), 11)
	assert.Len(t, book.Labels(fec.Indirect), 45)
	assert.Len(t, book.Labels(fec.Manual), 16)
	assert.Len(t, book.Labels(fec.OtherExcluded), 47)
	assert.Len(t, book.Labels(fec.Tax), 7)
	assert.Len(t, book.Labels(fec.Personnel), 5)

	assert.True(t, book.Has("PERSONNEL ADM &HORS PRO.", fec.Manual|fec.PayrollFed))
	assert.True(t, book.Has("LOCATION COPIEUR  RICOH", fec.Indirect))
	assert.False(t, book.Has("LOCATION COPIEUR RICOH", fec.Indirect))
	assert.False(t, book.Has("AUTRES PRODUITS ET CHARGES", fec.Manual))
}

func TestNewLabelBook_MergesDuplicates(t *testing.T) {
	book := fec.NewLabelBook([]fec.LabelRule{
		{Label: "cvae", Flags: fec.Tax},
		{Label: "EAU", Flags: fec.Indirect},
		{Label: " CVAE ", Flags: fec.Indirect},
	})

	assert.Equal(t, []string{"CVAE"}, book.Labels(fec.Tax|fec.Indirect))
	assert.Equal(t, []string{"CVAE", "EAU"}, book.Labels(fec.Indirect))
}
