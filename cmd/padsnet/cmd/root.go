package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/padsnet/internal/config"
	"github.com/OpenTraceLab/padsnet/internal/logging"
	"github.com/OpenTraceLab/padsnet/pkg/pads"
)

var (
	// Global flags
	verbose    bool
	configPath string
	logLevel   string
	logFormat  string

	// Parser flags, shared by every command that reads a netlist
	partialMode     bool
	caseInsensitive bool
	rejectLong      bool
)

// Loaded in PersistentPreRunE.
var (
	options *config.File
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "padsnet",
	Short: "PADS-PCB netlist parser and inspector",
	Long: `padsnet reads PADS-PCB / PADS2000 ASCII netlists and lets you inspect,
lint and convert them.

Examples:
  padsnet parse board.net                      # Validate and summarize
  padsnet parse --partial board.net            # Report every error, keep going
  padsnet nets board.net GND                   # Show the pins on GND
  padsnet check --fail board.net               # Lint for shorts and unused parts
  padsnet export --format kicad -o board.kicad_net board.net`,
	Version:           "0.9.0",
	SilenceUsage:      true,
	PersistentPreRunE: loadOptions,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "HCL options file (padsnet.hcl)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")

	rootCmd.PersistentFlags().BoolVar(&partialMode, "partial", false,
		"collect every error instead of stopping at the first")
	rootCmd.PersistentFlags().BoolVar(&caseInsensitive, "case-insensitive", false,
		"treat reference designators and net names as case-insensitive")
	rootCmd.PersistentFlags().BoolVar(&rejectLong, "reject-long", false,
		"reject over-long identifiers instead of truncating them")
}

// loadOptions reads the options file and builds the logger. Flags given on
// the command line win over the file.
func loadOptions(cmd *cobra.Command, args []string) error {
	options = &config.File{}
	if configPath != "" {
		f, err := config.Load(configPath)
		if err != nil {
			return err
		}
		options = f
	}

	level, format := logLevel, logFormat
	if !cmd.Flags().Changed("log-level") && options.LogLevel() != "" {
		level = options.LogLevel()
	}
	if !cmd.Flags().Changed("log-format") && options.LogFormat() != "" {
		format = options.LogFormat()
	}
	if verbose {
		level = "debug"
	}
	logger = logging.New(level, format, cmd.ErrOrStderr())

	if configPath != "" {
		logger.Debug("loaded options file", "path", configPath)
	}
	return nil
}

// parserConfig merges the options file with the parser flags.
func parserConfig(cmd *cobra.Command) (*pads.Config, error) {
	cfg, err := options.PadsConfig()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("partial") {
		cfg.Mode = pads.ModeStrict
		if partialMode {
			cfg.Mode = pads.ModePartial
		}
	}
	if flags.Changed("case-insensitive") {
		cfg.CaseInsensitive = caseInsensitive
	}
	if flags.Changed("reject-long") {
		cfg.LengthPolicy = pads.TruncateLong
		if rejectLong {
			cfg.LengthPolicy = pads.RejectLong
		}
	}
	cfg.Logger = logger
	return cfg, nil
}

// parseNetlist parses filename with the merged configuration.
func parseNetlist(cmd *cobra.Command, filename string) (*pads.Netlist, pads.Mode, error) {
	cfg, err := parserConfig(cmd)
	if err != nil {
		return nil, 0, err
	}

	parser, err := pads.NewParser(cfg)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create parser: %w", err)
	}

	logger.Debug("parsing netlist", "file", filename, "mode", cfg.Mode)
	nl, err := parser.ParseFile(filename)
	if err != nil {
		return nil, cfg.Mode, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return nl, cfg.Mode, nil
}
