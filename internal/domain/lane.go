package domain

// TokenMechanism classifies how a token's supply is handled across a lane.
type TokenMechanism string

const (
	LockAndMint            TokenMechanism = "LockAndMint"
	BurnAndUnlock          TokenMechanism = "BurnAndUnlock"
	LockAndUnlock          TokenMechanism = "LockAndUnlock"
	BurnAndMint            TokenMechanism = "BurnAndMint"
	Unsupported            TokenMechanism = "Unsupported"
	NoPoolsOnBothChains    TokenMechanism = "NoPoolsOnBothChains"
	NoPoolSourceChain      TokenMechanism = "NoPoolSourceChain"
	NoPoolDestinationChain TokenMechanism = "NoPoolDestinationChain"
)

// TokenMechanisms lists every mechanism, in declaration order.
var TokenMechanisms = []TokenMechanism{
	LockAndMint,
	BurnAndUnlock,
	LockAndUnlock,
	BurnAndMint,
	Unsupported,
	NoPoolsOnBothChains,
	NoPoolSourceChain,
	NoPoolDestinationChain,
}

// IsValid reports whether m is one of the declared mechanisms.
func (m TokenMechanism) IsValid() bool {
	for _, known := range TokenMechanisms {
		if m == known {
			return true
		}
	}
	return false
}

// PoolType is the token pool implementation deployed on one chain.
// The empty value means no pool is deployed.
type PoolType string

const (
	PoolLockRelease  PoolType = "lockRelease"
	PoolBurnMint     PoolType = "burnMint"
	PoolUSDC         PoolType = "usdc"
	PoolFeeTokenOnly PoolType = "feeTokenOnly"
)

// LaneSpecificFeeKey selects a fee sub-table based on the lane's endpoints.
type LaneSpecificFeeKey string

const (
	FromToEthereum LaneSpecificFeeKey = "fromToEthereum"
	FromEthereum   LaneSpecificFeeKey = "fromEthereum"
	ToEthereum     LaneSpecificFeeKey = "toEthereum"
	NonEthereum    LaneSpecificFeeKey = "nonEthereum"
	AllLanes       LaneSpecificFeeKey = "allLanes"
)

// LaneSpecificFeeKeys lists every fee key.
var LaneSpecificFeeKeys = []LaneSpecificFeeKey{FromToEthereum, FromEthereum, ToEthereum, NonEthereum, AllLanes}

// IsValid reports whether k is one of the declared fee keys.
func (k LaneSpecificFeeKey) IsValid() bool {
	for _, known := range LaneSpecificFeeKeys {
		if k == known {
			return true
		}
	}
	return false
}

// TechnologyEthereum is the chain technology that selects Ethereum fee tiers.
const TechnologyEthereum = "ETHEREUM"

// NetworkFeeStructure holds decimal-string fee amounts for each payment option.
type NetworkFeeStructure struct {
	GasTokenFee string `yaml:"gas_token_fee" json:"gas_token_fee"`
	LinkFee     string `yaml:"link_fee" json:"link_fee"`
}

// ZeroFees is returned whenever no fee data exists for a lookup.
var ZeroFees = NetworkFeeStructure{GasTokenFee: "0", LinkFee: "0"}

// MechanismFees maps a lane key to its fees.
type MechanismFees map[LaneSpecificFeeKey]NetworkFeeStructure

// NetworkFees is the static fee table: token transfer fees per mechanism and messaging fees.
// It is read-only once loaded.
type NetworkFees struct {
	TokenTransfers map[TokenMechanism]MechanismFees `yaml:"token_transfers" json:"token_transfers"`
	Messaging      MechanismFees                    `yaml:"messaging" json:"messaging"`
}

// ChainTechnologies maps a chain identifier to its technology (e.g. "ETHEREUM").
type ChainTechnologies map[string]string

// IsEthereum reports whether chain is classified as Ethereum technology.
// Unknown chains are not Ethereum.
func (c ChainTechnologies) IsEthereum(chain string) bool {
	return c[chain] == TechnologyEthereum
}

// RateLimiterConfig is a token bucket configuration. Capacity and Rate are fixed-point
// integer strings interpreted with the token's decimals.
type RateLimiterConfig struct {
	IsEnabled bool   `yaml:"is_enabled" json:"is_enabled"`
	Capacity  string `yaml:"capacity" json:"capacity"`
	Rate      string `yaml:"rate,omitempty" json:"rate,omitempty"`
}
