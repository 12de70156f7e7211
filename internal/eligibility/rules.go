package eligibility

import (
	"log/slog"

	"github.com/dwikurnia/eligibility-api/internal/types"
)

// The three built-in rules. Each one checks a single requirement and
// narrates its own decision at info (pass) or warn (fail) level; the
// final verdict line is the ResultLogger's job, not theirs.

// CreditLimitRule fails a record whose credit load exceeds the ceiling.
// The boundary is inclusive: taking exactly the limit is allowed.
type CreditLimitRule struct{}

func (CreditLimitRule) Name() string { return RuleCreditLimit }

func (CreditLimitRule) Validate(rec types.StudentRecord, req Requirement) (bool, error) {
	limit, err := req.Int()
	if err != nil {
		return false, err
	}

	if rec.CreditsTaken > limit {
		slog.Warn("credit check failed: load exceeds limit",
			slog.Int("credits_taken", rec.CreditsTaken),
			slog.Int("limit", limit),
		)
		return false, nil
	}

	slog.Info("credit check passed: load within limit")
	return true, nil
}

// PrerequisiteRule fails a record that has not passed the required
// course. Membership is exact — case-sensitive, no trimming.
type PrerequisiteRule struct{}

func (PrerequisiteRule) Name() string { return RulePrerequisite }

func (PrerequisiteRule) Validate(rec types.StudentRecord, req Requirement) (bool, error) {
	course, err := req.Str()
	if err != nil {
		return false, err
	}

	if !rec.HasPassed(course) {
		slog.Warn("prerequisite check failed: course not passed",
			slog.String("course", course),
		)
		return false, nil
	}

	slog.Info("prerequisite check passed: course satisfied",
		slog.String("course", course),
	)
	return true, nil
}

// PaymentRule fails a record whose payment status differs from the
// required one. Plain string equality, case-sensitive.
type PaymentRule struct{}

func (PaymentRule) Name() string { return RulePayment }

func (PaymentRule) Validate(rec types.StudentRecord, req Requirement) (bool, error) {
	required, err := req.Str()
	if err != nil {
		return false, err
	}

	if rec.PaymentStatus != required {
		slog.Warn("payment check failed: status mismatch",
			slog.String("actual", rec.PaymentStatus),
			slog.String("required", required),
		)
		return false, nil
	}

	slog.Info("payment check passed: status satisfied")
	return true, nil
}
