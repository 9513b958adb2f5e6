package rules

import "sort"

// Record holds the attributes of one module being classified, such as its
// resource path, issuer, query or mimetype. Nested attributes (description
// data, import attributes) are nested mappings. Records are supplied fresh
// per classification call and never mutated by the executor.
type Record map[string]interface{}

// RawRule is a user-authored rule node. The keys `rules` and `oneOf` are
// reserved for the engine itself; every other key belongs to some handler.
type RawRule map[string]interface{}

// Effect is one build directive emitted when a rule matches. The meaning
// of Value belongs to the consuming build pipeline.
type Effect struct {
	Kind  string
	Value interface{}
}

// EffectSource is a compiled effect entry: either a fixed effect or a
// generator invoked with the record at execution time.
type EffectSource interface {
	effectSource()
}

// StaticEffect emits a fixed effect whenever its rule matches.
type StaticEffect struct {
	Effect Effect
}

func (StaticEffect) effectSource() {}

// GeneratedEffects emits the effects returned by Generate for the record
// being classified. Generate must be free of shared mutable state for the
// rule set to stay safe for concurrent execution.
type GeneratedEffects struct {
	Generate func(Record) []Effect
}

func (GeneratedEffects) effectSource() {}

// Condition is a compiled predicate over one record attribute.
// MatchWhenEmpty decides whether the condition is satisfied when the
// target attribute is absent. Conditions are immutable once built.
type Condition struct {
	MatchWhenEmpty bool
	Predicate      func(interface{}) bool
}

// RuleCondition binds a compiled condition to the property path it
// applies to.
type RuleCondition struct {
	Path      PropertyPath
	Condition Condition
}

// CompiledRule is one node of the immutable compiled rule tree.
// Conditions and Effects preserve declaration order. Rules children are
// all executed when this rule matches; OneOf children are executed in
// order until the first match.
type CompiledRule struct {
	Conditions []RuleCondition
	Effects    []EffectSource
	Rules      []CompiledRule
	OneOf      []CompiledRule
}

// KeySet tracks the rule keys not yet claimed by any handler during
// compilation of a single rule.
type KeySet struct {
	keys map[string]struct{}
}

// NewKeySet creates a KeySet containing the given keys.
func NewKeySet(keys ...string) *KeySet {
	s := &KeySet{keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		s.keys[k] = struct{}{}
	}
	return s
}

// Add inserts a key into the set.
func (s *KeySet) Add(key string) {
	s.keys[key] = struct{}{}
}

// Has checks whether a key is in the set.
func (s *KeySet) Has(key string) bool {
	_, ok := s.keys[key]
	return ok
}

// Delete removes a key from the set. Handlers call this to claim the keys
// they own.
func (s *KeySet) Delete(key string) {
	delete(s.keys, key)
}

// Len returns the number of keys in the set.
func (s *KeySet) Len() int {
	return len(s.keys)
}

// Names returns the keys in sorted order, for stable error messages.
func (s *KeySet) Names() []string {
	names := make([]string, 0, len(s.keys))
	for k := range s.keys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
