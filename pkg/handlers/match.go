package handlers

import (
	"github.com/bundlekit/ruleset/pkg/registry"
	"github.com/bundlekit/ruleset/pkg/rules"
)

const MatchHandlerName = "match"

// MatchHandler owns the `test`, `include` and `exclude` keys, all matched
// against the `resource` attribute. `exclude` is compiled and then
// negated.
type MatchHandler struct {
	resource rules.PropertyPath
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler() *MatchHandler {
	return &MatchHandler{resource: rules.Property("resource")}
}

// Contribute implements rules.Handler.
func (h *MatchHandler) Contribute(path string, rule rules.RawRule, unhandled *rules.KeySet, b *rules.RuleBuilder, refs *rules.References) error {
	for _, key := range []string{"test", "include"} {
		if !unhandled.Has(key) {
			continue
		}
		unhandled.Delete(key)
		cond, err := rules.CompileCondition(path+"."+key, rule[key])
		if err != nil {
			return err
		}
		b.AddCondition(h.resource, cond)
	}

	if unhandled.Has("exclude") {
		unhandled.Delete("exclude")
		cond, err := rules.CompileCondition(path+".exclude", rule["exclude"])
		if err != nil {
			return err
		}
		b.AddCondition(h.resource, negate(cond))
	}

	return nil
}

// negate inverts both the predicate and the empty-value behavior.
func negate(cond rules.Condition) rules.Condition {
	return rules.Condition{
		MatchWhenEmpty: !cond.MatchWhenEmpty,
		Predicate:      func(v interface{}) bool { return !cond.Predicate(v) },
	}
}

func init() {
	registry.MustRegisterHandlerFactory(MatchHandlerName, func(options map[string]interface{}) (rules.Handler, error) {
		return NewMatchHandler(), nil
	})
}
