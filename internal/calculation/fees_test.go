package calculation

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/ccipdocs/networkfees/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures Errorf diagnostics.
type recordingLogger struct {
	NopLogger
	errors []string
}

func (r *recordingLogger) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

var (
	ethereumFee    = domain.NetworkFeeStructure{GasTokenFee: "0.50", LinkFee: "0.45"}
	fromEthFee     = domain.NetworkFeeStructure{GasTokenFee: "0.40", LinkFee: "0.35"}
	toEthFee       = domain.NetworkFeeStructure{GasTokenFee: "0.30", LinkFee: "0.27"}
	nonEthereumFee = domain.NetworkFeeStructure{GasTokenFee: "0.10", LinkFee: "0.09"}
	allLanesFee    = domain.NetworkFeeStructure{GasTokenFee: "0.07", LinkFee: "0.063"}
)

func testChains() domain.ChainTechnologies {
	return domain.ChainTechnologies{
		"mainnet":          domain.TechnologyEthereum,
		"sepolia":          domain.TechnologyEthereum,
		"arbitrum-mainnet": "ARBITRUM",
		"polygon-mainnet":  "POLYGON",
	}
}

func testFees() *domain.NetworkFees {
	return &domain.NetworkFees{
		TokenTransfers: map[domain.TokenMechanism]domain.MechanismFees{
			domain.LockAndUnlock: {domain.AllLanes: allLanesFee, domain.NonEthereum: nonEthereumFee},
			domain.BurnAndMint:   {domain.FromToEthereum: ethereumFee, domain.NonEthereum: nonEthereumFee},
			domain.LockAndMint:   {domain.FromEthereum: fromEthFee, domain.ToEthereum: toEthFee, domain.NonEthereum: nonEthereumFee},
			domain.BurnAndUnlock: {domain.ToEthereum: toEthFee, domain.NonEthereum: nonEthereumFee},
		},
		Messaging: domain.MechanismFees{
			domain.FromToEthereum: ethereumFee,
			domain.NonEthereum:    nonEthereumFee,
		},
	}
}

func newTestCalculator() (*FeeCalculator, *recordingLogger) {
	logger := &recordingLogger{}
	return NewFeeCalculator(testFees(), testChains(), logger), logger
}

func TestNetworkFeesForTokenMechanismDirect(t *testing.T) {
	fc, logger := newTestCalculator()

	assert.Equal(t, ethereumFee, fc.NetworkFeesForTokenMechanismDirect(domain.BurnAndMint, domain.FromToEthereum))
	assert.Empty(t, logger.errors)

	got := fc.NetworkFeesForTokenMechanismDirect(domain.BurnAndMint, domain.ToEthereum)
	assert.Equal(t, domain.NetworkFeeStructure{GasTokenFee: "0", LinkFee: "0"}, got)
	require.Len(t, logger.errors, 1)
	assert.Equal(t, "No fees defined for mechanism: BurnAndMint and lane key: toEthereum", logger.errors[0])
}

func TestNetworkFeesForTokenMechanismDirect_MissingMechanism(t *testing.T) {
	fc, logger := newTestCalculator()

	got := fc.NetworkFeesForTokenMechanismDirect(domain.Unsupported, domain.NonEthereum)
	assert.Equal(t, domain.ZeroFees, got)
	require.Len(t, logger.errors, 1)
	assert.Contains(t, logger.errors[0], "Unsupported")
	assert.Contains(t, logger.errors[0], "nonEthereum")
}

func TestNetworkFeesForTokenMechanism_AllLanesWins(t *testing.T) {
	fc, logger := newTestCalculator()

	lanes := [][2]string{
		{"mainnet", "arbitrum-mainnet"},
		{"arbitrum-mainnet", "mainnet"},
		{"arbitrum-mainnet", "polygon-mainnet"},
		{"unknown-chain", "other-chain"},
	}
	for _, lane := range lanes {
		assert.Equal(t, allLanesFee, fc.NetworkFeesForTokenMechanism(domain.LockAndUnlock, lane[0], lane[1]), "lane %v", lane)
	}
	assert.Empty(t, logger.errors)
}

func TestNetworkFeesForTokenMechanism_LaneKeyPriority(t *testing.T) {
	tests := []struct {
		name        string
		mechanism   domain.TokenMechanism
		source      string
		destination string
		expected    domain.NetworkFeeStructure
	}{
		{"combined key from ethereum", domain.BurnAndMint, "mainnet", "polygon-mainnet", ethereumFee},
		{"combined key to ethereum", domain.BurnAndMint, "arbitrum-mainnet", "sepolia", ethereumFee},
		{"combined key both ethereum", domain.BurnAndMint, "mainnet", "sepolia", ethereumFee},
		{"non ethereum lane", domain.BurnAndMint, "arbitrum-mainnet", "polygon-mainnet", nonEthereumFee},
		{"from ethereum key", domain.LockAndMint, "mainnet", "polygon-mainnet", fromEthFee},
		{"to ethereum key", domain.LockAndMint, "polygon-mainnet", "mainnet", toEthFee},
		{"from wins over to when both ethereum", domain.LockAndMint, "mainnet", "sepolia", fromEthFee},
		{"to ethereum falls back to to key", domain.BurnAndUnlock, "polygon-mainnet", "mainnet", toEthFee},
		{"from ethereum without from key is non ethereum", domain.BurnAndUnlock, "mainnet", "polygon-mainnet", nonEthereumFee},
		{"unknown chains are non ethereum", domain.LockAndMint, "foo", "bar", nonEthereumFee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc, logger := newTestCalculator()
			assert.Equal(t, tt.expected, fc.NetworkFeesForTokenMechanism(tt.mechanism, tt.source, tt.destination))
			assert.Empty(t, logger.errors)
		})
	}
}

func TestNetworkFeesForTokenMechanism_MissingMechanismTable(t *testing.T) {
	fc, logger := newTestCalculator()

	got := fc.NetworkFeesForTokenMechanism(domain.NoPoolSourceChain, "mainnet", "polygon-mainnet")
	assert.Equal(t, domain.ZeroFees, got)
	require.Len(t, logger.errors, 1)
	assert.Equal(t, "No fees defined for mechanism: NoPoolSourceChain and lane key: nonEthereum", logger.errors[0])
}

func TestMessagingNetworkFees(t *testing.T) {
	fc, logger := newTestCalculator()

	assert.Equal(t, ethereumFee, fc.MessagingNetworkFees("mainnet", "polygon-mainnet"))
	assert.Equal(t, ethereumFee, fc.MessagingNetworkFees("polygon-mainnet", "sepolia"))
	assert.Equal(t, nonEthereumFee, fc.MessagingNetworkFees("arbitrum-mainnet", "polygon-mainnet"))
	assert.Empty(t, logger.errors)
}

func TestMessagingNetworkFeesDirect_Missing(t *testing.T) {
	fc, logger := newTestCalculator()

	assert.Equal(t, domain.ZeroFees, fc.MessagingNetworkFeesDirect(domain.FromEthereum))
	require.Len(t, logger.errors, 1)
	assert.Equal(t, "No fees defined for lane key: fromEthereum", logger.errors[0])
}

func TestNewFeeCalculator_Defaults(t *testing.T) {
	fc := NewFeeCalculator(nil, nil, nil)
	assert.Equal(t, domain.ZeroFees, fc.MessagingNetworkFees("mainnet", "sepolia"))
	assert.Equal(t, domain.ZeroFees, fc.NetworkFeesForTokenMechanism(domain.BurnAndMint, "mainnet", "sepolia"))
}

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	fc := NewFeeCalculator(&domain.NetworkFees{}, nil, WriterLogger{W: &buf})

	fc.MessagingNetworkFeesDirect(domain.NonEthereum)
	assert.Equal(t, "ERROR No fees defined for lane key: nonEthereum\n", buf.String())

	buf.Reset()
	WriterLogger{W: &buf}.Debugf("hidden")
	assert.Empty(t, buf.String())
	WriterLogger{W: &buf, Verbose: true}.Debugf("shown %d", 1)
	assert.Equal(t, "DEBUG shown 1\n", buf.String())

	WriterLogger{}.Errorf("no writer")
}
