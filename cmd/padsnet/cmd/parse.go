package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/padsnet/pkg/export"
	"github.com/OpenTraceLab/padsnet/pkg/pads"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <netlist-file>",
	Short: "Parse a PADS netlist and print a summary",
	Long: `Parse a PADS-PCB / PADS2000 netlist and print part, net and pin counts.

In strict mode (the default) the first error stops the parse and the command
fails. With --partial every error is listed and parsing continues.

Examples:
  padsnet parse board.net
  padsnet parse --partial board.net
  padsnet parse --json board.net > board.json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the netlist as JSON")
}

func runParse(cmd *cobra.Command, args []string) error {
	filename := args[0]
	out := cmd.OutOrStdout()

	if verbose {
		fmt.Fprintf(out, "Parsing netlist: %s\n\n", filename)
	}

	nl, mode, err := parseNetlist(cmd, filename)
	if err != nil {
		return err
	}

	if parseJSON {
		data, err := export.JSON(nl)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "File:  %s\n", filename)
	fmt.Fprintf(out, "Mode:  %s\n", mode)
	fmt.Fprintf(out, "Parts: %d\n", len(nl.Parts))
	fmt.Fprintf(out, "Nets:  %d\n", len(nl.Nets))
	fmt.Fprintf(out, "Pins:  %d\n", nl.PinCount())

	if mode == pads.ModePartial {
		fmt.Fprintf(out, "\nErrors (%d):\n", len(nl.Errors))
		printParserErrors(cmd, nl.Errors)
	}
	if len(nl.Warnings) > 0 {
		fmt.Fprintf(out, "\nWarnings (%d):\n", len(nl.Warnings))
		printParserErrors(cmd, nl.Warnings)
	}
	return nil
}

func printParserErrors(cmd *cobra.Command, errs []*pads.ParserError) {
	for _, e := range errs {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s line %-5d %s\n", e.Code, e.Line, e.Message)
	}
}
