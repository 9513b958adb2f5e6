package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bundlekit/ruleset/pkg/errors"
	"github.com/bundlekit/ruleset/pkg/logging"
	"github.com/rs/zerolog"
)

// Compiler turns raw rule lists into immutable rule sets. The handler list
// is fixed at construction and consulted in order for every rule.
type Compiler struct {
	handlers []Handler
	logger   zerolog.Logger
}

// NewCompiler creates a compiler with the given ordered handlers. With no
// handlers only `rules`/`oneOf` nesting is usable; every other rule key is
// rejected as unknown.
func NewCompiler(handlers ...Handler) *Compiler {
	return &Compiler{
		handlers: handlers,
		logger:   logging.GetLogger("rules.compiler"),
	}
}

// Compile compiles a raw rule list into a RuleSet. Compilation is a
// one-shot synchronous pass; any error is fatal to the configuration load.
func (c *Compiler) Compile(rawRules []interface{}) (*RuleSet, error) {
	refs := newReferences()
	compiled, err := c.compileRules("ruleSet", rawRules, refs)
	if err != nil {
		return nil, err
	}
	refs.freeze()

	c.logger.Debug().
		Int("ruleCount", len(compiled)).
		Int("references", refs.Len()).
		Msg("Compiled rule set")

	return &RuleSet{rules: compiled, refs: refs}, nil
}

// compileRules compiles a rule list, dropping falsy entries (the
// conventional way to disable a rule) while preserving declaration order.
// Sub-paths are indexed by position in the raw list.
func (c *Compiler) compileRules(path string, rawRules []interface{}, refs *References) ([]CompiledRule, error) {
	compiled := make([]CompiledRule, 0, len(rawRules))
	for i, entry := range rawRules {
		if entry == nil || entry == false {
			continue
		}
		rulePath := fmt.Sprintf("%s[%d]", path, i)
		raw, ok := asRawRule(entry)
		if !ok {
			return nil, CompileError(rulePath, entry, "Expected rule object")
		}
		rule, err := c.compileRule(rulePath, raw, refs)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, rule)
	}
	return compiled, nil
}

// compileRule compiles a single rule node. Handlers claim the keys they
// own; the engine itself only knows `rules` and `oneOf`.
func (c *Compiler) compileRule(path string, raw RawRule, refs *References) (CompiledRule, error) {
	unhandled := NewKeySet()
	for key, value := range raw {
		if value == nil {
			continue
		}
		unhandled.Add(key)
	}

	builder := &RuleBuilder{}
	for _, handler := range c.handlers {
		if err := handler.Contribute(path, raw, unhandled, builder, refs); err != nil {
			return CompiledRule{}, err
		}
	}

	rule := builder.build()

	if unhandled.Has("rules") {
		unhandled.Delete("rules")
		list, ok := raw["rules"].([]interface{})
		if !ok {
			return CompiledRule{}, CompileError(path+".rules", raw["rules"],
				"Rule.rules must be an array of rules")
		}
		children, err := c.compileRules(path+".rules", list, refs)
		if err != nil {
			return CompiledRule{}, err
		}
		rule.Rules = children
	}

	if unhandled.Has("oneOf") {
		unhandled.Delete("oneOf")
		list, ok := raw["oneOf"].([]interface{})
		if !ok {
			return CompiledRule{}, CompileError(path+".oneOf", raw["oneOf"],
				"Rule.oneOf must be an array of rules")
		}
		children, err := c.compileRules(path+".oneOf", list, refs)
		if err != nil {
			return CompiledRule{}, err
		}
		rule.OneOf = children
	}

	if unhandled.Len() > 0 {
		return CompiledRule{}, CompileError(path, raw,
			fmt.Sprintf("Properties %s are unknown", strings.Join(unhandled.Names(), ", ")))
	}

	return rule, nil
}

// RuleSet is a compiled, immutable rule tree plus the reference map built
// alongside it. It is safe to share across concurrent Exec calls.
type RuleSet struct {
	rules []CompiledRule
	refs  *References
}

// Rules returns the compiled top-level rules. The returned slice and
// everything it reaches must be treated as read-only.
func (rs *RuleSet) Rules() []CompiledRule {
	return rs.rules
}

// References returns the frozen reference map built during compilation.
func (rs *RuleSet) References() *References {
	return rs.refs
}

// asRawRule normalizes the two mapping shapes a rule entry can carry.
func asRawRule(entry interface{}) (RawRule, bool) {
	switch r := entry.(type) {
	case RawRule:
		return r, true
	case map[string]interface{}:
		return RawRule(r), true
	default:
		return nil, false
	}
}

// CompileError builds the single fatal compile failure message embedding
// the cause, the dotted/indexed path and the stringified offending value.
// Handlers use it to raise path-annotated errors from Contribute.
func CompileError(path string, value interface{}, cause string) error {
	return errors.Newf(errors.ErrRuleCompile, "compiling rule set failed: %s (at %s: %s)",
		cause, path, stringifyValue(value)).
		WithDetail("path", path)
}

func stringifyValue(value interface{}) string {
	if value == nil {
		return "null"
	}
	return fmt.Sprintf("%v", value)
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
