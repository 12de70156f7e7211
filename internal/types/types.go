// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, and the eligibility engine can all import types
// without depending on each other.
package types

// StudentRecord is the read model every eligibility rule runs against.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls how the field appears when encoded to JSON
//     (snake_case names match REST API conventions).
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package when a record arrives over HTTP. "gte=0" means credits
//     can be zero (a brand-new student) but never negative.
//
// Once a record has been constructed it is treated as immutable: rules
// and the coordinator only ever read it. CoursesPassed is membership-
// tested, so its order carries no meaning.
type StudentRecord struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"           validate:"required"`
	CreditsTaken  int      `json:"credits_taken"  validate:"gte=0"`
	CoursesPassed []string `json:"courses_passed"`
	PaymentStatus string   `json:"payment_status" validate:"required"`
}

// HasPassed reports whether the student has passed the given course.
// Comparison is exact: case-sensitive, no trimming.
func (r StudentRecord) HasPassed(course string) bool {
	for _, c := range r.CoursesPassed {
		if c == course {
			return true
		}
	}
	return false
}

// CheckRequest is the body of POST /api/students/{id}/checks.
// Exactly one rule runs per request; which of the three requirement
// fields matters depends on the rule named:
//
//	{ "rule": "credit_limit", "limit": 22 }
//	{ "rule": "prerequisite", "course": "Algoritma" }
//	{ "rule": "payment",      "status": "lunas" }
//
// Limit is a pointer so we can tell "omitted" (fall back to the
// configured default) apart from an explicit 0.
type CheckRequest struct {
	Rule   string `json:"rule"   validate:"required"`
	Limit  *int   `json:"limit,omitempty"  validate:"omitempty,gte=0"`
	Course string `json:"course,omitempty"`
	Status string `json:"status,omitempty"`
}

// CheckResponse echoes back which rule ran against which student and
// whether the record satisfied it. Outcomes are never persisted — this
// response and the log lines are the only places they exist.
type CheckResponse struct {
	Student  string `json:"student"`
	Rule     string `json:"rule"`
	Eligible bool   `json:"eligible"`
}
