package handlers

import (
	"sort"
	"strings"

	"github.com/bundlekit/ruleset/pkg/errors"
	"github.com/bundlekit/ruleset/pkg/registry"
	"github.com/bundlekit/ruleset/pkg/rules"
)

const NestedMatchHandlerName = "nested-match"

// NestedMatchHandler owns a key whose value is a mapping of sub-keys to
// conditions, each matched at a nested property path. Dotted sub-keys are
// split into further segments, so `descriptionData = { "exports.import" =
// ... }` matches record.descriptionData.exports.import.
type NestedMatchHandler struct {
	key      string
	property string
}

// NewNestedMatchHandler creates a handler owning key, matching sub-keys
// under the given base attribute.
func NewNestedMatchHandler(key, property string) *NestedMatchHandler {
	return &NestedMatchHandler{key: key, property: property}
}

// Contribute implements rules.Handler.
func (h *NestedMatchHandler) Contribute(path string, rule rules.RawRule, unhandled *rules.KeySet, b *rules.RuleBuilder, refs *rules.References) error {
	if !unhandled.Has(h.key) {
		return nil
	}
	unhandled.Delete(h.key)

	value, ok := asConditionMap(rule[h.key])
	if !ok {
		return rules.CompileError(path+"."+h.key, rule[h.key],
			"Expected an object of conditions keyed by nested attribute")
	}

	// Fixed iteration order keeps condition order and compile errors stable.
	for _, subKey := range sortedMapKeys(value) {
		cond, err := rules.CompileCondition(path+"."+h.key+"."+subKey, value[subKey])
		if err != nil {
			return err
		}
		segments := append([]string{h.property}, strings.Split(subKey, ".")...)
		b.AddCondition(rules.NestedProperty(segments...), cond)
	}
	return nil
}

func asConditionMap(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}

func sortedMapKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	registry.MustRegisterHandlerFactory(NestedMatchHandlerName, func(options map[string]interface{}) (rules.Handler, error) {
		key, ok := options["key"].(string)
		if !ok || key == "" {
			return nil, errors.New(errors.ErrInvalidInput, "nested-match handler requires a 'key' option")
		}
		property, ok := options["property"].(string)
		if !ok || property == "" {
			property = key
		}
		return NewNestedMatchHandler(key, property), nil
	})
}
