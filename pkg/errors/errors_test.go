package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrRuleCompile, "compilation failed")

	assert.Equal(t, ErrRuleCompile, err.Code)
	assert.Equal(t, "compilation failed", err.Message)
	assert.NotNil(t, err.Details)
	assert.EqualError(t, err, "[RULE_COMPILE] compilation failed")
}

func TestNewf(t *testing.T) {
	err := Newf(ErrConfigLoad, "cannot load %s", "rules.toml")
	assert.EqualError(t, err, "[CONFIG_LOAD] cannot load rules.toml")
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("disk on fire")
	err := Wrap(inner, ErrConfigLoad, "loading ruleset")

	assert.EqualError(t, err, "[CONFIG_LOAD] loading ruleset: disk on fire")
	assert.Equal(t, inner, errors.Unwrap(err))

	assert.Nil(t, Wrap(nil, ErrConfigLoad, "nothing"))
	assert.Nil(t, Wrapf(nil, ErrConfigLoad, "nothing %d", 1))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrRuleCompile, "bad condition").
		WithDetail("path", "ruleSet[0].test").
		WithDetails(map[string]interface{}{"value": 42})

	assert.Equal(t, "ruleSet[0].test", err.Details["path"])
	assert.Equal(t, 42, err.Details["value"])
}

func TestIsErrorCode(t *testing.T) {
	base := New(ErrRuleCompile, "bad condition")
	wrapped := fmt.Errorf("outer context: %w", base)

	tests := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{"direct match", base, ErrRuleCompile, true},
		{"direct mismatch", base, ErrConfigLoad, false},
		{"through wrapping", wrapped, ErrRuleCompile, true},
		{"plain error", fmt.Errorf("plain"), ErrRuleCompile, false},
		{"nil error", nil, ErrRuleCompile, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestErrorsIs(t *testing.T) {
	a := New(ErrRuleCompile, "one message")
	b := New(ErrRuleCompile, "another message")
	c := New(ErrConfigLoad, "third")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrRuleCompile, GetErrorCode(New(ErrRuleCompile, "x")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestGetErrorDetails(t *testing.T) {
	err := New(ErrRuleCompile, "x").WithDetail("path", "ruleSet[2]")
	assert.Equal(t, "ruleSet[2]", GetErrorDetails(err)["path"])
	assert.Nil(t, GetErrorDetails(fmt.Errorf("plain")))
}
