package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/arp_backend/internal/core/domain"
	"github.com/SscSPs/arp_backend/internal/core/fec"
	"github.com/SscSPs/arp_backend/internal/ingest"
	"github.com/spf13/cobra"
)

type analyzeCmd struct {
	cli          *CLI
	payrollFiles []string
	format       string
}

func newAnalyzeCmd(cli *CLI) *cobra.Command {
	ac := &analyzeCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "analyze <fec-file>",
		Short: "Segment a FEC export into the monthly report blocks",
		Args:  cobra.ExactArgs(1),
		RunE:  ac.run,
	}

	cmd.Flags().StringSliceVar(&ac.payrollFiles, "payroll", nil, "Payroll cost files, earliest upload first")
	cmd.Flags().StringVarP(&ac.format, "output", "o", FormatJSON, "Output format (json or yaml)")
	return cmd
}

func (ac *analyzeCmd) run(cmd *cobra.Command, args []string) error {
	sheet, err := readSheet(args[0])
	if err != nil {
		return err
	}
	entries, err := ingest.LedgerEntries(sheet)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if skipped := fec.UnreadableAmountRows(entries); len(skipped) > 0 {
		slog.Debug("Ledger rows with unreadable amounts are ignored", slog.Any("rows", skipped))
	}

	uploads := make([][]domain.PayrollRecord, 0, len(ac.payrollFiles))
	for _, path := range ac.payrollFiles {
		payrollSheet, err := readSheet(path)
		if err != nil {
			return err
		}
		records, _ := ingest.PayrollRecords(payrollSheet)
		uploads = append(uploads, records)
	}

	period := fec.LedgerPeriod(entries)
	result, err := fec.Analyze(entries, fec.AggregatePayrollRecords(period, uploads), fec.DefaultLabelBook())
	if err != nil {
		return err
	}
	return ac.cli.render(ac.format, result)
}

func readSheet(path string) (ingest.Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return ingest.Sheet{}, err
	}
	defer f.Close()

	sheet, err := ingest.ReadSheet(path, f)
	if err != nil {
		return ingest.Sheet{}, fmt.Errorf("%s: %w", path, err)
	}
	return sheet, nil
}
