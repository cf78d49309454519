package cli

import (
	"fmt"

	"github.com/SscSPs/arp_backend/internal/core/fec"
	"github.com/spf13/cobra"
)

func newPeriodCmd(cli *CLI) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "period <raw>",
		Short: "Show how a date cell is read as a reporting period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.render(format, fec.ProbePeriod(args[0]))
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", FormatJSON, "Output format (json or yaml)")
	return cmd
}

func newClassifyCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <raw>",
		Short: "Classify a P / HP cell as PRODUCTION or ADMINISTRATION",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), fec.ClassifyPHP(args[0]))
			return err
		},
	}
}
