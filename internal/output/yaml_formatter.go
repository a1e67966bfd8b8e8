package output

import (
	"github.com/ccipdocs/networkfees/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the lane report as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *domain.LaneReport) ([]byte, error) {
	return yaml.Marshal(report)
}
