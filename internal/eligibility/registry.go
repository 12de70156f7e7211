package eligibility

import (
	"errors"
	"fmt"
)

// ErrUnknownRule is returned by Registry.Get for a kind no rule was
// registered under.
var ErrUnknownRule = errors.New("unknown rule")

// Registry maps rule kind names to Rule implementations. The HTTP layer
// resolves the "rule" field of a check request through it, so adding a
// rule to the running service is a single Register call at startup.
//
// A Registry is populated once during startup and only read afterwards,
// so it needs no locking.
type Registry struct {
	rules map[string]Rule
}

// NewRegistry returns a registry preloaded with the three built-in
// rules: credit_limit, prerequisite, payment.
func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]Rule)}
	r.Register(CreditLimitRule{})
	r.Register(PrerequisiteRule{})
	r.Register(PaymentRule{})
	return r
}

// Register adds (or replaces) a rule under its own Name.
func (r *Registry) Register(rule Rule) {
	r.rules[rule.Name()] = rule
}

// Get returns the rule registered under kind, or ErrUnknownRule.
func (r *Registry) Get(kind string) (Rule, error) {
	rule, ok := r.rules[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, kind)
	}
	return rule, nil
}

// Kinds lists the registered rule kind names, for error messages and
// the demo output. Order is unspecified.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.rules))
	for k := range r.rules {
		kinds = append(kinds, k)
	}
	return kinds
}
