package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/padsnet/pkg/analysis"
)

var (
	checkFail          bool
	checkJSON          bool
	checkSinglePin     bool
	checkIgnore        []string
	checkIgnorePattern string
)

var checkCmd = &cobra.Command{
	Use:   "check <netlist-file>",
	Short: "Lint a netlist for connectivity problems",
	Long: `Check a parsed netlist for pins on undeclared parts, parts that are not
connected to any net, single-pin nets and shorts between nets.

Examples:
  padsnet check board.net
  padsnet check --single-pin --ignore-pattern '^MH[0-9]+$' board.net
  padsnet check --fail board.net    # exit non-zero when issues are found`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkFail, "fail", false, "exit with an error when issues are found")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print the report as JSON")
	checkCmd.Flags().BoolVar(&checkSinglePin, "single-pin", false, "report nets with a single pin")
	checkCmd.Flags().StringSliceVar(&checkIgnore, "ignore", nil, "reference designators to skip")
	checkCmd.Flags().StringVar(&checkIgnorePattern, "ignore-pattern", "", "regex of reference designators to skip")
}

func runCheck(cmd *cobra.Command, args []string) error {
	nl, _, err := parseNetlist(cmd, args[0])
	if err != nil {
		return err
	}

	cfg := options.AnalysisConfig()
	flags := cmd.Flags()
	if flags.Changed("case-insensitive") {
		cfg.CaseInsensitive = caseInsensitive
	}
	if flags.Changed("single-pin") {
		cfg.ReportSinglePinNets = checkSinglePin
	}
	if flags.Changed("ignore") {
		cfg.IgnoreParts = checkIgnore
	}
	if flags.Changed("ignore-pattern") {
		cfg.IgnorePattern = checkIgnorePattern
	}

	report, err := analysis.Check(nl, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if checkJSON {
		data, err := report.ExportJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	} else {
		fmt.Fprintf(out, "Checked %d parts, %d nets, %d pins\n\n",
			report.PartCount, report.NetCount, report.PinCount)
		if !report.HasIssues() {
			fmt.Fprintln(out, "No issues found")
		}
		for _, issue := range report.Issues {
			fmt.Fprintf(out, "  %s\n", issue)
		}
	}

	if checkFail && report.HasIssues() {
		return fmt.Errorf("%d issue(s) found", len(report.Issues))
	}
	return nil
}
