package handlers

import (
	"github.com/bundlekit/ruleset/pkg/errors"
	"github.com/bundlekit/ruleset/pkg/registry"
	"github.com/bundlekit/ruleset/pkg/rules"
)

const PropertyMatchHandlerName = "property-match"

// PropertyMatchHandler owns a single rule key and compiles its value as a
// condition on one record attribute. Most of the flat matching vocabulary
// (issuer, scheme, mimetype, ...) is instances of this handler.
type PropertyMatchHandler struct {
	key  string
	path rules.PropertyPath
}

// NewPropertyMatchHandler creates a handler owning key, matching against
// the given property path.
func NewPropertyMatchHandler(key string, path rules.PropertyPath) *PropertyMatchHandler {
	return &PropertyMatchHandler{key: key, path: path}
}

// Contribute implements rules.Handler.
func (h *PropertyMatchHandler) Contribute(path string, rule rules.RawRule, unhandled *rules.KeySet, b *rules.RuleBuilder, refs *rules.References) error {
	if !unhandled.Has(h.key) {
		return nil
	}
	unhandled.Delete(h.key)

	cond, err := rules.CompileCondition(path+"."+h.key, rule[h.key])
	if err != nil {
		return err
	}
	b.AddCondition(h.path, cond)
	return nil
}

func init() {
	registry.MustRegisterHandlerFactory(PropertyMatchHandlerName, func(options map[string]interface{}) (rules.Handler, error) {
		key, ok := options["key"].(string)
		if !ok || key == "" {
			return nil, errors.New(errors.ErrInvalidInput, "property-match handler requires a 'key' option")
		}
		property, ok := options["property"].(string)
		if !ok || property == "" {
			property = key
		}
		return NewPropertyMatchHandler(key, rules.Property(property)), nil
	})
}
