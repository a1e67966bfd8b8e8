package output

import (
	"bytes"
	"fmt"

	"github.com/ccipdocs/networkfees/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// ConsoleFormatter renders the lane report as a two-column table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.LaneReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s -> %s (%s)\n", report.SourceChain, report.DestinationChain, report.Token)

	rows := [][]string{
		{"Mechanism", string(report.Mechanism)},
		{"Source pool", report.SourcePool},
		{"Destination pool", report.DestinationPool},
		{"Token transfer fee (gas token)", report.TokenTransferFees.GasTokenFee},
		{"Token transfer fee (LINK)", report.TokenTransferFees.LinkFee},
		{"Messaging fee (gas token)", report.MessagingFees.GasTokenFee},
		{"Messaging fee (LINK)", report.MessagingFees.LinkFee},
		{"Outbound capacity", report.OutboundCapacity},
	}
	if report.OutboundRate != "" {
		rows = append(rows, []string{"Outbound rate", report.OutboundRate}, []string{"Outbound refill", report.OutboundRefill})
	}
	rows = append(rows, []string{"Inbound capacity", report.InboundCapacity})
	if report.InboundRate != "" {
		rows = append(rows, []string{"Inbound rate", report.InboundRate}, []string{"Inbound refill", report.InboundRefill})
	}

	table := tablewriter.NewWriter(&buf)
	table.Header("Field", "Value")
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return nil, err
		}
	}
	if err := table.Render(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
