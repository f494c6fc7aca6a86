package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/padsnet/pkg/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <netlist-file>",
	Short: "Convert a netlist to JSON or KiCad format",
	Long: `Convert a PADS netlist to another format.

Formats:
  json   - parts, nets and any partial-mode errors
  kicad  - KiCad netlist (export (version D) ...)

Examples:
  padsnet export --format json board.net
  padsnet export --format kicad -o board.kicad_net board.net`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json or kicad")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	nl, _, err := parseNetlist(cmd, args[0])
	if err != nil {
		return err
	}

	data, err := export.Write(nl, format)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	logger.Info("netlist exported", "format", format, "output", exportOutput)
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", exportOutput, len(data))
	}
	return nil
}
