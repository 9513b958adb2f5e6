package handlers

import (
	"fmt"

	"github.com/bundlekit/ruleset/pkg/registry"
	"github.com/bundlekit/ruleset/pkg/rules"
)

const UseHandlerName = "use"

// UseEntry is the payload of a "use" effect: one transformation to apply,
// with its options. When Options is set the same payload is stored in the
// compilation reference map under Ident, so that identical configuration
// is shared instead of duplicated per match.
type UseEntry struct {
	Loader  string
	Options interface{}
	Ident   string
}

// UseGenerator produces use entries from the record being classified.
// Raw `use` values of this type compile into generated effects.
type UseGenerator func(rules.Record) []UseEntry

// UseHandler owns the `use`, `loader` and `options` keys and translates
// them into effects of kind "use".
type UseHandler struct{}

// NewUseHandler creates a new UseHandler.
func NewUseHandler() *UseHandler {
	return &UseHandler{}
}

// Contribute implements rules.Handler.
func (h *UseHandler) Contribute(path string, rule rules.RawRule, unhandled *rules.KeySet, b *rules.RuleBuilder, refs *rules.References) error {
	hasLoader := unhandled.Has("loader")
	hasOptions := unhandled.Has("options")
	hasUse := unhandled.Has("use")

	if hasUse && (hasLoader || hasOptions) {
		unhandled.Delete("use")
		unhandled.Delete("loader")
		unhandled.Delete("options")
		return rules.CompileError(path+".use", rule["use"],
			"Rule.loader and Rule.options cannot be used together with Rule.use")
	}

	if hasLoader {
		unhandled.Delete("loader")
		loader, ok := rule["loader"].(string)
		if !ok {
			return rules.CompileError(path+".loader", rule["loader"], "Rule.loader must be a string")
		}
		entry := UseEntry{Loader: loader}
		if hasOptions {
			unhandled.Delete("options")
			entry.Options = rule["options"]
			entry.Ident = path + ".options"
			refs.Add(entry.Ident, entry.Options)
		}
		b.AddEffect("use", entry)
	} else if hasOptions {
		unhandled.Delete("options")
		return rules.CompileError(path+".options", rule["options"],
			"Rule.options requires Rule.loader to be present")
	}

	if hasUse {
		unhandled.Delete("use")
		if generate, ok := rule["use"].(UseGenerator); ok {
			b.AddGeneratedEffects(func(rec rules.Record) []rules.Effect {
				entries := generate(rec)
				effects := make([]rules.Effect, 0, len(entries))
				for _, entry := range entries {
					effects = append(effects, rules.Effect{Kind: "use", Value: entry})
				}
				return effects
			})
			return nil
		}
		entries, err := compileUseValue(path+".use", rule["use"], refs)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			b.AddEffect("use", entry)
		}
	}

	return nil
}

// compileUseValue accepts a single use entry or a list of them.
func compileUseValue(path string, value interface{}, refs *rules.References) ([]UseEntry, error) {
	if list, ok := value.([]interface{}); ok {
		entries := make([]UseEntry, 0, len(list))
		for i, item := range list {
			entry, err := compileUseEntry(fmt.Sprintf("%s[%d]", path, i), item, refs)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
		return entries, nil
	}

	entry, err := compileUseEntry(path, value, refs)
	if err != nil {
		return nil, err
	}
	return []UseEntry{entry}, nil
}

// compileUseEntry compiles one use entry: a loader name, a pre-built
// UseEntry, or an object with loader/options/ident keys. Options payloads
// are registered in the reference map keyed by the explicit ident or the
// entry's own path.
func compileUseEntry(path string, value interface{}, refs *rules.References) (UseEntry, error) {
	switch v := value.(type) {
	case string:
		return UseEntry{Loader: v}, nil

	case UseEntry:
		if v.Options != nil {
			if v.Ident == "" {
				v.Ident = path + ".options"
			}
			refs.Add(v.Ident, v.Options)
		}
		return v, nil

	case map[string]interface{}:
		loader, ok := v["loader"].(string)
		if !ok || loader == "" {
			return UseEntry{}, rules.CompileError(path, value, "Use entry must specify a loader")
		}
		for key := range v {
			switch key {
			case "loader", "options", "ident":
			default:
				return UseEntry{}, rules.CompileError(path+"."+key, v[key],
					fmt.Sprintf("Unexpected property %s in use entry", key))
			}
		}
		entry := UseEntry{Loader: loader}
		if options, ok := v["options"]; ok && options != nil {
			entry.Options = options
			if ident, ok := v["ident"].(string); ok && ident != "" {
				entry.Ident = "ref--" + ident
			} else {
				entry.Ident = path + ".options"
			}
			refs.Add(entry.Ident, options)
		}
		return entry, nil

	default:
		return UseEntry{}, rules.CompileError(path, value,
			fmt.Sprintf("Unexpected use entry of type %T", value))
	}
}

func init() {
	registry.MustRegisterHandlerFactory(UseHandlerName, func(options map[string]interface{}) (rules.Handler, error) {
		return NewUseHandler(), nil
	})
}
