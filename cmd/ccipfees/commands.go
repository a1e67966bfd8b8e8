package main

import (
	"fmt"

	"github.com/ccipdocs/networkfees/internal/calculation"
	"github.com/ccipdocs/networkfees/internal/config"
	"github.com/ccipdocs/networkfees/internal/domain"
	"github.com/ccipdocs/networkfees/internal/output"
	"github.com/spf13/cobra"
)

// parsePool maps the "none" placeholder to the absent pool type.
func parsePool(s string) domain.PoolType {
	if s == "none" || s == "-" {
		return ""
	}
	return domain.PoolType(s)
}

func newMechanismCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mechanism <source-pool> <destination-pool>",
		Short: "Classify a lane's token mechanism from its pool types (use \"none\" for no pool)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, destination := parsePool(args[0]), parsePool(args[1])
			result := struct {
				Mechanism       domain.TokenMechanism `json:"mechanism" yaml:"mechanism"`
				SourcePool      string                `json:"source_pool" yaml:"source_pool"`
				DestinationPool string                `json:"destination_pool" yaml:"destination_pool"`
			}{
				Mechanism:       calculation.DetermineTokenMechanism(source, destination),
				SourcePool:      calculation.TokenPoolDisplay(source),
				DestinationPool: calculation.TokenPoolDisplay(destination),
			}
			return a.print(cmd, result, fmt.Sprintf("%s (%s -> %s)", result.Mechanism, result.SourcePool, result.DestinationPool))
		},
	}
}

func newTokenFeesCmd(a *app) *cobra.Command {
	var laneKey string
	cmd := &cobra.Command{
		Use:   "token-fees <mechanism> [source-chain destination-chain]",
		Short: "Look up token transfer network fees for a mechanism",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mechanism := domain.TokenMechanism(args[0])
			var fees domain.NetworkFeeStructure
			switch {
			case laneKey != "":
				fees = a.fees.NetworkFeesForTokenMechanismDirect(mechanism, domain.LaneSpecificFeeKey(laneKey))
			case len(args) == 3:
				fees = a.fees.NetworkFeesForTokenMechanism(mechanism, args[1], args[2])
			default:
				return fmt.Errorf("either --lane-key or both source and destination chains are required")
			}
			return a.print(cmd, fees, feesText(fees))
		},
	}
	cmd.Flags().StringVar(&laneKey, "lane-key", "", "look up this lane key directly instead of resolving it from chains")
	return cmd
}

func newMessagingFeesCmd(a *app) *cobra.Command {
	var laneKey string
	cmd := &cobra.Command{
		Use:   "messaging-fees [source-chain destination-chain]",
		Short: "Look up messaging network fees for a lane",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fees domain.NetworkFeeStructure
			switch {
			case laneKey != "":
				fees = a.fees.MessagingNetworkFeesDirect(domain.LaneSpecificFeeKey(laneKey))
			case len(args) == 2:
				fees = a.fees.MessagingNetworkFees(args[0], args[1])
			default:
				return fmt.Errorf("either --lane-key or both source and destination chains are required")
			}
			return a.print(cmd, fees, feesText(fees))
		},
	}
	cmd.Flags().StringVar(&laneKey, "lane-key", "", "look up this lane key directly instead of resolving it from chains")
	return cmd
}

func feesText(fees domain.NetworkFeeStructure) string {
	return fmt.Sprintf("Gas token fee: %s\nLINK fee: %s", fees.GasTokenFee, fees.LinkFee)
}

func newCapacityCmd(a *app) *cobra.Command {
	var (
		decimals int32
		symbol   string
		capacity string
		disabled bool
	)
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Format a rate limiter capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := &domain.RateLimiterConfig{IsEnabled: !disabled, Capacity: capacity}
			text := output.DisplayCapacity(decimals, symbol, cfg)
			return a.print(cmd, map[string]string{"capacity": text}, text)
		},
	}
	cmd.Flags().Int32Var(&decimals, "decimals", output.DefaultDecimals, "token decimals")
	cmd.Flags().StringVar(&symbol, "symbol", "LINK", "token symbol")
	cmd.Flags().StringVar(&capacity, "capacity", "0", "capacity as a fixed-point integer")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "treat the rate limiter as disabled")
	return cmd
}

func newRateCmd(a *app) *cobra.Command {
	var (
		decimals int32
		symbol   string
		capacity string
		rate     string
	)
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Format a rate limiter refill rate and refill time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			display := output.DisplayRate(capacity, rate, symbol, decimals)
			return a.print(cmd, display, display.RateSecond+"\n"+display.MaxThroughput)
		},
	}
	cmd.Flags().Int32Var(&decimals, "decimals", output.DefaultDecimals, "token decimals")
	cmd.Flags().StringVar(&symbol, "symbol", "LINK", "token symbol")
	cmd.Flags().StringVar(&capacity, "capacity", "0", "capacity as a fixed-point integer")
	cmd.Flags().StringVar(&rate, "rate", "0", "refill rate per second as a fixed-point integer")
	return cmd
}

func newLaneCmd(a *app) *cobra.Command {
	var (
		req                            calculation.LaneRequest
		sourcePool, destinationPool    string
		outboundCapacity, outboundRate string
		inboundCapacity, inboundRate   string
	)
	cmd := &cobra.Command{
		Use:   "lane <source-chain> <destination-chain>",
		Short: "Render the full report for a token on a lane",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.SourceChain, req.DestinationChain = args[0], args[1]
			req.SourcePool, req.DestinationPool = parsePool(sourcePool), parsePool(destinationPool)
			req.ExactDecimals = true
			req.Outbound = limiter(outboundCapacity, outboundRate)
			req.Inbound = limiter(inboundCapacity, inboundRate)

			report := calculation.NewLaneReporter(a.fees).Build(req)
			return output.WriteReport(cmd.OutOrStdout(), report, a.format)
		},
	}
	cmd.Flags().StringVar(&req.Token, "token", "LINK", "token symbol")
	cmd.Flags().Int32Var(&req.Decimals, "decimals", output.DefaultDecimals, "token decimals")
	cmd.Flags().StringVar(&sourcePool, "source-pool", "none", "pool type on the source chain")
	cmd.Flags().StringVar(&destinationPool, "destination-pool", "none", "pool type on the destination chain")
	cmd.Flags().StringVar(&outboundCapacity, "outbound-capacity", "", "outbound capacity; empty disables the outbound limiter")
	cmd.Flags().StringVar(&outboundRate, "outbound-rate", "", "outbound refill rate per second")
	cmd.Flags().StringVar(&inboundCapacity, "inbound-capacity", "", "inbound capacity; empty disables the inbound limiter")
	cmd.Flags().StringVar(&inboundRate, "inbound-rate", "", "inbound refill rate per second")
	return cmd
}

// limiter builds an enabled rate limiter config, or nil when no capacity is given.
func limiter(capacity, rate string) *domain.RateLimiterConfig {
	if capacity == "" {
		return nil
	}
	return &domain.RateLimiterConfig{IsEnabled: true, Capacity: capacity, Rate: rate}
}

func newExportConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export-config <file>",
		Short: "Write the active fee configuration as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.NewFeeTableParser().SaveConfiguration(a.config, args[0]); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote fee configuration to %s\n", args[0])
			return nil
		},
	}
}
