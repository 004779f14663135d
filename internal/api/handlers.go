package api

import (
	"errors"
	"net/http"
	"sort"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/indemniza/severance-calculator/internal/calculation"
	"github.com/indemniza/severance-calculator/internal/config"
	"github.com/indemniza/severance-calculator/internal/output"
)

const maxBodyBytes = 1 << 20

// Error kinds reported in ErrorResponse.Error.
const (
	KindInvalidJSON       = "invalid_json"
	KindInvalidDateFormat = "invalid_date_format"
	KindInvalidNumeric    = "invalid_numeric_input"
	KindInvalidDateRange  = "invalid_date_range"
	KindUnknownRules      = "unknown_rules"
	KindUnsupportedFormat = "unsupported_format"
	KindInternal          = "internal_error"
)

var contentTypes = map[string]string{
	"console":      "text/plain; charset=utf-8",
	"console-lite": "text/plain; charset=utf-8",
	"csv":          "text/csv; charset=utf-8",
	"html":         "text/html; charset=utf-8",
	"json":         "application/json",
	"yaml":         "application/yaml",
}

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Parser *config.InputParser

	engines      map[string]*calculation.CalculationEngine
	defaultRules string
	logger       *zap.Logger
}

// NewHandler creates a handler serving every built-in rule set plus the rules of
// defaultEngine, which also answer requests that name no rules.
func NewHandler(defaultEngine *calculation.CalculationEngine, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		Parser:       config.NewInputParser(),
		engines:      make(map[string]*calculation.CalculationEngine),
		defaultRules: defaultEngine.Rules.Name,
		logger:       logger,
	}
	for _, name := range calculation.AvailableRulesNames() {
		engine, err := calculation.NewCalculationEngineForRules(name)
		if err != nil {
			continue
		}
		engine.SetLogger(logger.Sugar())
		h.engines[name] = engine
	}
	h.engines[defaultEngine.Rules.Name] = defaultEngine
	return h
}

// Calculate runs one severance calculation.
// POST /api/severance[?format=json|console|console-lite|csv|yaml|html]
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req SeveranceRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, KindInvalidJSON, "", err)
		return
	}

	format := output.NormalizeFormatName(r.URL.Query().Get("format"))
	if format == "" {
		format = "json"
	}
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		writeError(w, http.StatusBadRequest, KindUnsupportedFormat, "format", output.ErrUnsupportedFormat)
		return
	}

	rulesName := req.Rules
	if rulesName == "" {
		rulesName = h.defaultRules
	}
	engine, ok := h.engines[rulesName]
	if !ok {
		writeError(w, http.StatusBadRequest, KindUnknownRules, "rules", calculation.ErrUnknownRules)
		return
	}

	profile, err := h.Parser.ParseRawInput(req.RawInput)
	if err != nil {
		writeError(w, http.StatusBadRequest, errorKind(err), config.FieldOf(err), err)
		return
	}

	result := engine.Calculate(profile)
	result.Assumptions = output.GenerateNotes(engine.Rules)

	body, err := formatter.Format(result)
	if err != nil {
		h.logger.Error("format result", zap.String("format", format), zap.Error(err))
		writeError(w, http.StatusInternalServerError, KindInternal, "", err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[formatter.Name()])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// ListRules returns the rule sets this server can apply.
// GET /api/rules
func (h *Handler) ListRules(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(h.engines))
	for name := range h.engines {
		names = append(names, name)
	}
	sort.Strings(names)

	dtos := make([]RulesDTO, 0, len(names))
	for _, name := range names {
		dtos = append(dtos, RulesDTO{Default: name == h.defaultRules, TaxRules: h.engines[name].Rules})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Health reports liveness.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(h.engines))
	for name := range h.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Rules: names, Format: output.AvailableFormatterNames()})
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, config.ErrInvalidDateFormat):
		return KindInvalidDateFormat
	case errors.Is(err, config.ErrInvalidNumericInput):
		return KindInvalidNumeric
	case errors.Is(err, config.ErrInvalidDateRange):
		return KindInvalidDateRange
	default:
		return KindInternal
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, kind, field string, err error) {
	resp := ErrorResponse{Status: status, Error: kind, Field: field}
	if err != nil {
		resp.Detail = err.Error()
	}
	writeJSON(w, status, resp)
}
