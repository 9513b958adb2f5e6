package handlers

import (
	"github.com/bundlekit/ruleset/pkg/errors"
	"github.com/bundlekit/ruleset/pkg/registry"
	"github.com/bundlekit/ruleset/pkg/rules"
)

const StaticEffectHandlerName = "static-effect"

// StaticEffectHandler owns a set of keys that translate directly into
// static effects: the key becomes the effect kind and the raw value is
// passed through untouched for the build pipeline to interpret.
type StaticEffectHandler struct {
	keys []string
}

// NewStaticEffectHandler creates a handler emitting one static effect per
// owned key present on a rule.
func NewStaticEffectHandler(keys ...string) *StaticEffectHandler {
	return &StaticEffectHandler{keys: keys}
}

// Contribute implements rules.Handler.
func (h *StaticEffectHandler) Contribute(path string, rule rules.RawRule, unhandled *rules.KeySet, b *rules.RuleBuilder, refs *rules.References) error {
	for _, key := range h.keys {
		if !unhandled.Has(key) {
			continue
		}
		unhandled.Delete(key)
		b.AddEffect(key, rule[key])
	}
	return nil
}

func init() {
	registry.MustRegisterHandlerFactory(StaticEffectHandlerName, func(options map[string]interface{}) (rules.Handler, error) {
		raw, ok := options["keys"].([]interface{})
		if !ok || len(raw) == 0 {
			return nil, errors.New(errors.ErrInvalidInput, "static-effect handler requires a 'keys' option")
		}
		keys := make([]string, 0, len(raw))
		for _, k := range raw {
			s, ok := k.(string)
			if !ok {
				return nil, errors.Newf(errors.ErrInvalidInput, "static-effect handler keys must be strings, got %T", k)
			}
			keys = append(keys, s)
		}
		return NewStaticEffectHandler(keys...), nil
	})
}
