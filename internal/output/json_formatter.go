package output

import (
	"github.com/goccy/go-json"

	"github.com/indemniza/severance-calculator/internal/domain"
)

// JSONFormatter serializes the calculation result as pretty-printed JSON.
// Amounts keep full precision as decimal strings.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
