package output

import (
	"encoding/json"

	"github.com/ccipdocs/networkfees/internal/domain"
)

// JSONFormatter serializes the lane report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.LaneReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
