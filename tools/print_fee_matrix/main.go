package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/ccipdocs/networkfees/internal/calculation"
	"github.com/ccipdocs/networkfees/internal/config"
	"github.com/ccipdocs/networkfees/internal/domain"
)

// Prints the token transfer and messaging fees resolved for every chain pair of a
// fee configuration, to eyeball which lane key each lane ends up on.
func main() {
	cfg := config.DefaultConfiguration()
	if len(os.Args) > 1 {
		loaded, err := config.NewFeeTableParser().LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	fc := calculation.NewFeeCalculator(&cfg.NetworkFees, cfg.ChainTechnologies, calculation.WriterLogger{W: os.Stderr})

	chains := make([]string, 0, len(cfg.ChainTechnologies))
	for chain := range cfg.ChainTechnologies {
		chains = append(chains, chain)
	}
	sort.Strings(chains)

	mechanisms := []domain.TokenMechanism{domain.LockAndMint, domain.BurnAndUnlock, domain.LockAndUnlock, domain.BurnAndMint}
	for _, source := range chains {
		for _, destination := range chains {
			if source == destination {
				continue
			}
			msg := fc.MessagingNetworkFees(source, destination)
			fmt.Printf("%s -> %s messaging: %s / %s LINK\n", source, destination, msg.GasTokenFee, msg.LinkFee)
			for _, mechanism := range mechanisms {
				fee := fc.NetworkFeesForTokenMechanism(mechanism, source, destination)
				fmt.Printf("  %-14s %s / %s LINK\n", mechanism, fee.GasTokenFee, fee.LinkFee)
			}
		}
	}
}
