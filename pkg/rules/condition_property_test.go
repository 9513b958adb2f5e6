package rules

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func propertyParams() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	return params
}

func TestConditionProperties_StringPrefix(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	properties.Property("string condition matches exactly the prefix relation", prop.ForAll(
		func(prefix, value string) bool {
			cond, err := CompileCondition("p", prefix)
			if err != nil {
				return false
			}
			return cond.Predicate(value) == strings.HasPrefix(value, prefix)
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("matchWhenEmpty iff the prefix is empty", prop.ForAll(
		func(prefix string) bool {
			cond, err := CompileCondition("p", prefix)
			if err != nil {
				return false
			}
			return cond.MatchWhenEmpty == (len(prefix) == 0)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestConditionProperties_OrList(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	properties.Property("list condition matches iff any element matches", prop.ForAll(
		func(prefixes []string, value string) bool {
			raw := make([]interface{}, len(prefixes))
			for i, p := range prefixes {
				raw[i] = p
			}
			cond, err := CompileCondition("p", raw)
			if err != nil {
				return false
			}

			expected := false
			for _, p := range prefixes {
				if strings.HasPrefix(value, p) {
					expected = true
					break
				}
			}
			return cond.Predicate(value) == expected
		},
		gen.SliceOf(gen.AlphaString()),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestConditionProperties_AndObject(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	properties.Property("and condition matches iff every element matches", prop.ForAll(
		func(prefixes []string, value string) bool {
			if len(prefixes) == 0 {
				return true
			}
			raw := make([]interface{}, len(prefixes))
			for i, p := range prefixes {
				raw[i] = p
			}
			cond, err := CompileCondition("p", map[string]interface{}{"and": raw})
			if err != nil {
				return false
			}

			expected := true
			for _, p := range prefixes {
				if !strings.HasPrefix(value, p) {
					expected = false
					break
				}
			}
			return cond.Predicate(value) == expected
		},
		gen.SliceOf(gen.AlphaString()),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestConditionProperties_NotInvolution(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	properties.Property("double negation restores the original condition", prop.ForAll(
		func(prefix, value string) bool {
			plain, err := CompileCondition("p", prefix)
			if err != nil {
				return false
			}
			doubled, err := CompileCondition("p", map[string]interface{}{
				"not": map[string]interface{}{"not": prefix},
			})
			if err != nil {
				return false
			}
			return plain.Predicate(value) == doubled.Predicate(value) &&
				plain.MatchWhenEmpty == doubled.MatchWhenEmpty
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestConditionProperties_DeMorgan(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	properties.Property("not(or(a,b)) agrees with and(not a, not b)", prop.ForAll(
		func(a, b, value string) bool {
			left, err := CompileCondition("p", map[string]interface{}{
				"not": []interface{}{a, b},
			})
			if err != nil {
				return false
			}
			right, err := CompileCondition("p", map[string]interface{}{
				"and": []interface{}{
					map[string]interface{}{"not": a},
					map[string]interface{}{"not": b},
				},
			})
			if err != nil {
				return false
			}
			return left.Predicate(value) == right.Predicate(value)
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestConditionProperties_NonStringValuesNeverMatch(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	properties.Property("string and regex conditions reject non-string values", prop.ForAll(
		func(prefix string, value int) bool {
			cond, err := CompileCondition("p", prefix)
			if err != nil {
				return false
			}
			return !cond.Predicate(value)
		},
		gen.AlphaString(),
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestConditionProperties_ExecDeterminism(t *testing.T) {
	properties := gopter.NewProperties(propertyParams())

	compiler := NewCompiler(stubHandler{})
	ruleSet, err := compiler.Compile([]interface{}{
		map[string]interface{}{"test": "a", "use": "A"},
		map[string]interface{}{"test": "b", "use": "B"},
		map[string]interface{}{
			"oneOf": []interface{}{
				map[string]interface{}{"test": "ab", "use": "AB"},
				map[string]interface{}{"use": "fallback"},
			},
		},
	})
	require.NoError(t, err)

	properties.Property("repeated execution yields identical effect lists", prop.ForAll(
		func(resource string) bool {
			rec := Record{"resource": resource}
			first := ruleSet.Exec(rec)
			second := ruleSet.Exec(rec)
			if len(first) != len(second) {
				return false
			}
			for i := range first {
				if first[i] != second[i] {
					return false
				}
			}
			return true
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
