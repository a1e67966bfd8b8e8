package domain

// Configuration is the document loaded from a fee configuration file
type Configuration struct {
	NetworkFees       NetworkFees       `yaml:"network_fees" json:"network_fees"`
	ChainTechnologies ChainTechnologies `yaml:"chain_technologies" json:"chain_technologies"`
}

// LaneReport is everything a lane page shows for one token
type LaneReport struct {
	SourceChain       string              `json:"source_chain" yaml:"source_chain"`
	DestinationChain  string              `json:"destination_chain" yaml:"destination_chain"`
	Token             string              `json:"token" yaml:"token"`
	SourcePool        string              `json:"source_pool" yaml:"source_pool"`
	DestinationPool   string              `json:"destination_pool" yaml:"destination_pool"`
	Mechanism         TokenMechanism      `json:"mechanism" yaml:"mechanism"`
	TokenTransferFees NetworkFeeStructure `json:"token_transfer_fees" yaml:"token_transfer_fees"`
	MessagingFees     NetworkFeeStructure `json:"messaging_fees" yaml:"messaging_fees"`
	OutboundCapacity  string              `json:"outbound_capacity" yaml:"outbound_capacity"`
	OutboundRate      string              `json:"outbound_rate,omitempty" yaml:"outbound_rate,omitempty"`
	OutboundRefill    string              `json:"outbound_refill,omitempty" yaml:"outbound_refill,omitempty"`
	InboundCapacity   string              `json:"inbound_capacity" yaml:"inbound_capacity"`
	InboundRate       string              `json:"inbound_rate,omitempty" yaml:"inbound_rate,omitempty"`
	InboundRefill     string              `json:"inbound_refill,omitempty" yaml:"inbound_refill,omitempty"`
}
