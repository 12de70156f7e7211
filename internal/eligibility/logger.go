package eligibility

import "log/slog"

// ResultLogger records the final outcome of a validation pass, keyed by
// student name and rule kind. It is deliberately separate from the
// rules: rules decide, the result logger announces. Logging has no
// failure mode here — if the underlying sink breaks, that is the
// handler's problem, not the coordinator's.
type ResultLogger interface {
	LogSuccess(studentName, ruleName string)
	LogFailure(studentName, ruleName string)
}

// SlogResultLogger writes outcomes through a *slog.Logger. Successes go
// out at info level; failures at error level, because a failed check is
// the one externally visible "bad" event this system produces.
type SlogResultLogger struct {
	log *slog.Logger
}

// NewSlogResultLogger wraps log; a nil log means the process default.
func NewSlogResultLogger(log *slog.Logger) *SlogResultLogger {
	if log == nil {
		log = slog.Default()
	}
	return &SlogResultLogger{log: log}
}

func (l *SlogResultLogger) LogSuccess(studentName, ruleName string) {
	l.log.Info("validation passed",
		slog.String("student", studentName),
		slog.String("rule", ruleName),
	)
}

func (l *SlogResultLogger) LogFailure(studentName, ruleName string) {
	l.log.Error("validation failed",
		slog.String("student", studentName),
		slog.String("rule", ruleName),
	)
}
