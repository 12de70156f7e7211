package eligibility

import (
	"log/slog"
	"strings"

	"github.com/dwikurnia/eligibility-api/internal/types"
)

// Service coordinates one validation pass: it runs its injected rule
// against a record and hands the outcome to its injected result logger.
//
// Both collaborators arrive through the constructor and are held by
// abstraction, never by concrete type — swapping the rule (or the
// logger) changes behaviour without touching this file. The service
// keeps no state between calls; Process is idempotent for identical
// inputs.
type Service struct {
	rule   Rule
	logger ResultLogger
}

// NewService wires a coordinator to exactly one rule and one result
// logger.
func NewService(rule Rule, logger ResultLogger) *Service {
	return &Service{rule: rule, logger: logger}
}

// Process validates rec against req and records the outcome.
//
// The boolean is the rule's verdict; the error is non-nil only when the
// requirement's kind does not match what the rule expects, in which
// case no outcome is recorded. A false verdict is not an error.
func (s *Service) Process(rec types.StudentRecord, req Requirement) (bool, error) {
	// Visual separator so consecutive passes are easy to tell apart in
	// console output.
	slog.Info(strings.Repeat("-", 50))
	slog.Info("starting validation", slog.String("student", rec.Name))

	ok, err := s.rule.Validate(rec, req)
	if err != nil {
		return false, err
	}

	if ok {
		s.logger.LogSuccess(rec.Name, s.rule.Name())
	} else {
		s.logger.LogFailure(rec.Name, s.rule.Name())
	}
	return ok, nil
}
