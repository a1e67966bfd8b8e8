package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ccipdocs/networkfees/internal/domain"
	"github.com/ccipdocs/networkfees/pkg/decimal"
	"gopkg.in/yaml.v3"
)

// FeeTableParser handles parsing of fee configuration files
type FeeTableParser struct{}

// NewFeeTableParser creates a new fee table parser
func NewFeeTableParser() *FeeTableParser {
	return &FeeTableParser{}
}

// LoadFromFile loads configuration from a YAML file
func (fp *FeeTableParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return fp.Parse(data)
}

// Parse decodes and validates a YAML configuration document. Unknown fields are rejected.
func (fp *FeeTableParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: empty document")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := fp.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (fp *FeeTableParser) ValidateConfiguration(config *domain.Configuration) error {
	mechanisms := make([]string, 0, len(config.NetworkFees.TokenTransfers))
	for mechanism := range config.NetworkFees.TokenTransfers {
		mechanisms = append(mechanisms, string(mechanism))
	}
	sort.Strings(mechanisms)

	for _, name := range mechanisms {
		mechanism := domain.TokenMechanism(name)
		if !mechanism.IsValid() {
			return fmt.Errorf("token_transfers: unknown mechanism %q", name)
		}
		if err := fp.validateMechanismFees(config.NetworkFees.TokenTransfers[mechanism]); err != nil {
			return fmt.Errorf("token_transfers.%s: %w", name, err)
		}
	}

	if err := fp.validateMechanismFees(config.NetworkFees.Messaging); err != nil {
		return fmt.Errorf("messaging: %w", err)
	}

	for chain, technology := range config.ChainTechnologies {
		if chain == "" {
			return fmt.Errorf("chain_technologies: empty chain name")
		}
		if technology == "" {
			return fmt.Errorf("chain_technologies.%s: technology is required", chain)
		}
	}

	return nil
}

// validateMechanismFees validates the lane keys and amounts of one fee sub-table
func (fp *FeeTableParser) validateMechanismFees(fees domain.MechanismFees) error {
	keys := make([]string, 0, len(fees))
	for key := range fees {
		keys = append(keys, string(key))
	}
	sort.Strings(keys)

	for _, name := range keys {
		key := domain.LaneSpecificFeeKey(name)
		if !key.IsValid() {
			return fmt.Errorf("unknown lane key %q", name)
		}
		fee := fees[key]
		if err := validateAmount(fee.GasTokenFee); err != nil {
			return fmt.Errorf("%s.gas_token_fee: %w", name, err)
		}
		if err := validateAmount(fee.LinkFee); err != nil {
			return fmt.Errorf("%s.link_fee: %w", name, err)
		}
	}
	return nil
}

func validateAmount(value string) error {
	if value == "" {
		return fmt.Errorf("amount is required")
	}
	amount, err := decimal.NewAmountFromString(value)
	if err != nil {
		return fmt.Errorf("%q is not a decimal amount", value)
	}
	if amount.IsNegative() {
		return fmt.Errorf("%q cannot be negative", value)
	}
	return nil
}

// SaveConfiguration writes config as YAML to filename
func (fp *FeeTableParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
