// Package cli is the fecctl command line: offline analysis of FEC and payroll
// files with the same engine the API uses.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// CLI represents the command-line interface
type CLI struct {
	out     io.Writer
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	cli := &CLI{out: opts.Output}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

// Execute runs the command named by args.
func (cli *CLI) Execute(args ...string) error {
	cli.rootCmd.SetArgs(args)
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fecctl",
		Short:         "FEC general-ledger analysis tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.out)

	cmd.AddCommand(newAnalyzeCmd(cli))
	cmd.AddCommand(newPeriodCmd(cli))
	cmd.AddCommand(newClassifyCmd(cli))
	return cmd
}

// render writes v in the requested format.
func (cli *CLI) render(format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(cli.out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(cli.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q (use %s or %s)", format, FormatJSON, FormatYAML)
	}
}
