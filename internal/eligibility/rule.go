// Package eligibility implements the course-registration eligibility
// engine: a set of single-purpose rules, a registry they live in, and a
// coordinating service that runs one rule against one student record.
//
// WHY AN INTERFACE?
// ─────────────────
// The Service (coordinator) should not know or care which business rule
// it is running. By depending only on the Rule interface:
//
//   - Adding a rule = write one type with Name and Validate.
//     Zero changes to the Service — this is exactly the extension point
//     the payment rule arrives through.
//
//   - Writing tests = inject a stub Rule that returns whatever outcome
//     the test needs.
package eligibility

import "github.com/dwikurnia/eligibility-api/internal/types"

// Rule kind names. These double as the registry keys and as the labels
// the result logger prints, so they are part of the API surface.
const (
	RuleCreditLimit  = "credit_limit"
	RulePrerequisite = "prerequisite"
	RulePayment      = "payment"
)

// Rule is the contract every eligibility check implements.
// Any concrete type with these two methods satisfies it — Go does this
// implicitly (no "implements" keyword required).
type Rule interface {
	// Name returns the stable kind label for this rule ("credit_limit",
	// "prerequisite", ...). Used for registry lookup and log output —
	// never derived via reflection.
	Name() string

	// Validate reports whether the record satisfies this rule for the
	// given requirement. A false return is a normal business outcome,
	// not an error. The only error a rule produces is a requirement of
	// the wrong kind (wrapped ErrRequirementKind).
	//
	// Validate must not mutate the record: calling it twice with the
	// same inputs yields the same result.
	Validate(rec types.StudentRecord, req Requirement) (bool, error)
}
