package eligibility

import (
	"errors"
	"fmt"
)

// ErrRequirementKind is returned when a rule is handed a requirement of
// the wrong variant (e.g. the credit-limit rule receives a course name).
// Callers can detect it with errors.Is.
//
// The original design passed an untyped value and trusted the caller to
// match it to the rule. Failing fast here turns that silent contract
// into a checked one.
var ErrRequirementKind = errors.New("requirement kind mismatch")

// requirementKind discriminates the two variants a Requirement can hold.
type requirementKind int

const (
	kindInt requirementKind = iota
	kindString
)

func (k requirementKind) String() string {
	if k == kindInt {
		return "int"
	}
	return "string"
}

// Requirement is the rule-specific parameter a check runs against: an
// integer ceiling for the credit-limit rule, a course name or a payment
// status for the string rules. It is a small tagged union — construct
// one with IntRequirement or StringRequirement, never directly.
type Requirement struct {
	kind requirementKind
	i    int
	s    string
}

// IntRequirement wraps an integer requirement (a credit ceiling).
func IntRequirement(v int) Requirement {
	return Requirement{kind: kindInt, i: v}
}

// StringRequirement wraps a string requirement (a course name or a
// required payment status).
func StringRequirement(v string) Requirement {
	return Requirement{kind: kindString, s: v}
}

// Int unwraps the integer variant, or fails with ErrRequirementKind.
func (r Requirement) Int() (int, error) {
	if r.kind != kindInt {
		return 0, fmt.Errorf("want int requirement, got %s: %w", r.kind, ErrRequirementKind)
	}
	return r.i, nil
}

// Str unwraps the string variant, or fails with ErrRequirementKind.
func (r Requirement) Str() (string, error) {
	if r.kind != kindString {
		return "", fmt.Errorf("want string requirement, got %s: %w", r.kind, ErrRequirementKind)
	}
	return r.s, nil
}
