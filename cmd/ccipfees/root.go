package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ccipdocs/networkfees/internal/calculation"
	"github.com/ccipdocs/networkfees/internal/config"
	"github.com/ccipdocs/networkfees/internal/domain"
	"github.com/ccipdocs/networkfees/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	configFile string
	format     string
	verbose    bool

	config *domain.Configuration
	fees   *calculation.FeeCalculator
}

// NewRootCmd builds the ccipfees command tree
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "ccipfees",
		Short: "Display CCIP network fees and token rate limits",
		Long: `ccipfees turns static CCIP configuration into the values shown on lane pages:
token mechanisms, network fees, rate limiter capacity and refill time.

Fee tables come from --config, or the built-in tables when no file is given.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "fee configuration YAML file (default: built-in tables)")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", "console", "output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log fee key resolution")

	rootCmd.AddCommand(
		newMechanismCmd(a),
		newTokenFeesCmd(a),
		newMessagingFeesCmd(a),
		newCapacityCmd(a),
		newRateCmd(a),
		newLaneCmd(a),
		newExportConfigCmd(a),
	)
	return rootCmd
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	if output.GetFormatterByName(a.format) == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, a.format)
	}
	a.format = output.NormalizeFormatName(a.format)

	if a.configFile == "" {
		a.config = config.DefaultConfiguration()
	} else {
		cfg, err := config.NewFeeTableParser().LoadFromFile(a.configFile)
		if err != nil {
			return err
		}
		a.config = cfg
	}

	logger := calculation.WriterLogger{W: cmd.ErrOrStderr(), Verbose: a.verbose}
	a.fees = calculation.NewFeeCalculator(&a.config.NetworkFees, a.config.ChainTechnologies, logger)
	return nil
}

// print writes v as JSON or YAML when requested, otherwise the console text.
func (a *app) print(cmd *cobra.Command, v any, console string) error {
	switch a.format {
	case "json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(b))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), console)
	}
	return nil
}
