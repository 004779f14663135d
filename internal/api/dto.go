package api

import (
	"github.com/indemniza/severance-calculator/internal/domain"
)

// SeveranceRequest is the body of POST /api/severance. Fields are the raw form values
// (dd/mm/yyyy dates, amounts in either decimal notation).
type SeveranceRequest struct {
	domain.RawInput
	Rules string `json:"rules,omitempty"`
}

// RulesDTO describes a built-in rule set.
type RulesDTO struct {
	Default bool `json:"default"`
	domain.TaxRules
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status string   `json:"status"`
	Rules  []string `json:"rules"`
	Format []string `json:"formats"`
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	Field  string `json:"field,omitempty"`
	Detail string `json:"detail,omitempty"`
}
