package eligibility

import (
	"testing"

	"github.com/dwikurnia/eligibility-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryHasBuiltinRules(t *testing.T) {
	reg := NewRegistry()

	for _, kind := range []string{RuleCreditLimit, RulePrerequisite, RulePayment} {
		rule, err := reg.Get(kind)
		require.NoError(t, err, kind)
		assert.Equal(t, kind, rule.Name())
	}

	assert.ElementsMatch(t,
		[]string{RuleCreditLimit, RulePrerequisite, RulePayment},
		reg.Kinds())
}

func TestRegistryGetUnknown(t *testing.T) {
	_, err := NewRegistry().Get("attendance")
	assert.ErrorIs(t, err, ErrUnknownRule)
}

// minCreditsRule is a rule the registry has never heard of — the
// inverse of the credit ceiling, requiring a minimum load.
type minCreditsRule struct{}

func (minCreditsRule) Name() string { return "min_credits" }

func (minCreditsRule) Validate(rec types.StudentRecord, req Requirement) (bool, error) {
	min, err := req.Int()
	if err != nil {
		return false, err
	}
	return rec.CreditsTaken >= min, nil
}

func TestRegistryRegisterCustomRule(t *testing.T) {
	reg := NewRegistry()
	reg.Register(minCreditsRule{})

	rule, err := reg.Get("min_credits")
	require.NoError(t, err)

	ok, err := rule.Validate(types.StudentRecord{CreditsTaken: 12}, IntRequirement(9))
	require.NoError(t, err)
	assert.True(t, ok)
}
