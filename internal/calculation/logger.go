package calculation

// Logger receives the engine's diagnostics: one Infof line per calculated result,
// a Warnf for every batch case skipped on invalid input, and, with Debug set, the
// full severance breakdown at debug level. *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything; engines start with it until SetLogger is called.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
