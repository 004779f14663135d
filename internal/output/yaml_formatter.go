package output

import (
	"github.com/indemniza/severance-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the calculation result as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	return yaml.Marshal(result)
}
