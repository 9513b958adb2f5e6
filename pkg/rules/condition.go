package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// CompileCondition turns one raw condition into an executable Condition.
// The accepted shapes are strings (prefix match, "" matches empty),
// predicate functions, regular expressions, lists (OR) and combinator
// objects with the keys or/and/not. Everything else is a compile error
// annotated with the dotted path of the offending node.
func CompileCondition(path string, cond interface{}) (Condition, error) {
	switch c := cond.(type) {
	case string:
		if c == "" {
			return Condition{
				MatchWhenEmpty: true,
				Predicate:      func(v interface{}) bool { return v == "" },
			}, nil
		}
		return Condition{
			Predicate: func(v interface{}) bool {
				s, ok := v.(string)
				return ok && strings.HasPrefix(s, c)
			},
		}, nil

	case nil:
		return Condition{}, CompileError(path, cond, "Expected condition but got falsy value")

	case bool:
		if !c {
			return Condition{}, CompileError(path, cond, "Expected condition but got falsy value")
		}
		return Condition{}, CompileError(path, cond, "Unexpected condition of type bool")

	case func(interface{}) bool:
		matchWhenEmpty, err := probeCondition(path, c)
		if err != nil {
			return Condition{}, err
		}
		return Condition{MatchWhenEmpty: matchWhenEmpty, Predicate: c}, nil

	case *regexp.Regexp:
		return Condition{
			MatchWhenEmpty: c.MatchString(""),
			Predicate: func(v interface{}) bool {
				s, ok := v.(string)
				return ok && c.MatchString(s)
			},
		}, nil

	case []interface{}:
		items, err := compileConditionList(path, c)
		if err != nil {
			return Condition{}, err
		}
		return combineConditionsOr(items), nil

	case map[string]interface{}:
		return compileConditionObject(path, c)

	default:
		return Condition{}, CompileError(path, cond, fmt.Sprintf("Unexpected condition of type %T", cond))
	}
}

// compileConditionList compiles every list item at its indexed sub-path.
func compileConditionList(path string, list []interface{}) ([]Condition, error) {
	items := make([]Condition, 0, len(list))
	for i, entry := range list {
		item, err := CompileCondition(fmt.Sprintf("%s[%d]", path, i), entry)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// compileConditionObject compiles the or/and/not combinator form. Multiple
// keys in one object combine with AND. Keys are processed in a fixed order
// so compile errors are deterministic.
func compileConditionObject(path string, obj map[string]interface{}) (Condition, error) {
	for _, key := range sortedKeys(obj) {
		switch key {
		case "or", "and", "not":
		default:
			return Condition{}, CompileError(
				path+"."+key, obj[key], fmt.Sprintf("Unexpected property %s in condition", key))
		}
	}

	var conditions []Condition

	if v, ok := obj["or"]; ok && v != nil {
		list, isList := v.([]interface{})
		if !isList {
			return Condition{}, CompileError(path+".or", v, "Expected array of conditions")
		}
		items, err := compileConditionList(path+".or", list)
		if err != nil {
			return Condition{}, err
		}
		conditions = append(conditions, combineConditionsOr(items))
	}

	if v, ok := obj["and"]; ok && v != nil {
		list, isList := v.([]interface{})
		if !isList {
			return Condition{}, CompileError(path+".and", v, "Expected array of conditions")
		}
		items, err := compileConditionList(path+".and", list)
		if err != nil {
			return Condition{}, err
		}
		conditions = append(conditions, combineConditionsAnd(items))
	}

	if v, ok := obj["not"]; ok && v != nil {
		inner, err := CompileCondition(path+".not", v)
		if err != nil {
			return Condition{}, err
		}
		conditions = append(conditions, Condition{
			MatchWhenEmpty: !inner.MatchWhenEmpty,
			Predicate:      func(value interface{}) bool { return !inner.Predicate(value) },
		})
	}

	if len(conditions) == 0 {
		return Condition{}, CompileError(path, obj, "Expected condition, but got empty thing")
	}
	return combineConditionsAnd(conditions), nil
}

// probeCondition derives MatchWhenEmpty by calling the predicate with the
// empty string. A predicate that panics during the probe is rejected at
// compile time.
func probeCondition(path string, fn func(interface{}) bool) (matchWhenEmpty bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = CompileError(path, "<function>",
				fmt.Sprintf("Evaluating condition function with '' failed: %v", r))
		}
	}()
	return fn(""), nil
}

// combineConditionsOr builds the OR of the given conditions. A single
// condition is returned unchanged: its MatchWhenEmpty is preserved
// exactly, not re-derived. This is observable behavior, not an
// optimization.
func combineConditionsOr(conditions []Condition) Condition {
	switch len(conditions) {
	case 0:
		return Condition{
			MatchWhenEmpty: false,
			Predicate:      func(interface{}) bool { return false },
		}
	case 1:
		return conditions[0]
	}

	matchWhenEmpty := false
	for _, c := range conditions {
		if c.MatchWhenEmpty {
			matchWhenEmpty = true
			break
		}
	}
	return Condition{
		MatchWhenEmpty: matchWhenEmpty,
		Predicate: func(v interface{}) bool {
			for _, c := range conditions {
				if c.Predicate(v) {
					return true
				}
			}
			return false
		},
	}
}

// combineConditionsAnd builds the AND of the given conditions, with the
// same single-element fast path as combineConditionsOr.
func combineConditionsAnd(conditions []Condition) Condition {
	switch len(conditions) {
	case 0:
		return Condition{
			MatchWhenEmpty: false,
			Predicate:      func(interface{}) bool { return false },
		}
	case 1:
		return conditions[0]
	}

	matchWhenEmpty := true
	for _, c := range conditions {
		if !c.MatchWhenEmpty {
			matchWhenEmpty = false
			break
		}
	}
	return Condition{
		MatchWhenEmpty: matchWhenEmpty,
		Predicate: func(v interface{}) bool {
			for _, c := range conditions {
				if !c.Predicate(v) {
					return false
				}
			}
			return true
		},
	}
}
