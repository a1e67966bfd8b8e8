package config

import "github.com/ccipdocs/networkfees/internal/domain"

// DefaultConfiguration returns the built-in fee tables, in USD except LockAndUnlock,
// which is a percentage of the transferred amount.
func DefaultConfiguration() *domain.Configuration {
	return &domain.Configuration{
		NetworkFees: domain.NetworkFees{
			TokenTransfers: map[domain.TokenMechanism]domain.MechanismFees{
				domain.LockAndUnlock: {
					domain.AllLanes: {GasTokenFee: "0.07", LinkFee: "0.063"},
				},
				domain.LockAndMint: {
					domain.FromEthereum: {GasTokenFee: "0.50", LinkFee: "0.45"},
					domain.NonEthereum:  {GasTokenFee: "0.25", LinkFee: "0.225"},
				},
				domain.BurnAndUnlock: {
					domain.ToEthereum:  {GasTokenFee: "0.50", LinkFee: "0.45"},
					domain.NonEthereum: {GasTokenFee: "0.25", LinkFee: "0.225"},
				},
				domain.BurnAndMint: {
					domain.FromToEthereum: {GasTokenFee: "0.50", LinkFee: "0.45"},
					domain.NonEthereum:    {GasTokenFee: "0.25", LinkFee: "0.225"},
				},
			},
			Messaging: domain.MechanismFees{
				domain.FromToEthereum: {GasTokenFee: "0.50", LinkFee: "0.45"},
				domain.NonEthereum:    {GasTokenFee: "0.10", LinkFee: "0.09"},
			},
		},
		ChainTechnologies: domain.ChainTechnologies{
			"mainnet":              domain.TechnologyEthereum,
			"sepolia":              domain.TechnologyEthereum,
			"arbitrum-mainnet":     "ARBITRUM",
			"avalanche-mainnet":    "AVALANCHE",
			"base-mainnet":         "BASE",
			"bnb-mainnet":          "BNB_CHAIN",
			"optimism-mainnet":     "OPTIMISM",
			"polygon-mainnet":      "POLYGON",
			"avalanche-fuji":       "AVALANCHE",
			"arbitrum-sepolia":     "ARBITRUM",
			"polygon-amoy":         "POLYGON",
			"wemix-mainnet":        "WEMIX",
			"gnosis-chain-mainnet": "GNOSIS_CHAIN",
		},
	}
}
