package rules

// RuleBuilder accumulates the conditions and effects contributed by
// handlers while a single rule is being compiled. Entries keep the order
// in which they were added.
type RuleBuilder struct {
	conditions []RuleCondition
	effects    []EffectSource
}

// AddCondition appends a compiled condition on the given property path.
func (b *RuleBuilder) AddCondition(path PropertyPath, cond Condition) {
	b.conditions = append(b.conditions, RuleCondition{Path: path, Condition: cond})
}

// AddEffect appends a static effect.
func (b *RuleBuilder) AddEffect(kind string, value interface{}) {
	b.effects = append(b.effects, StaticEffect{Effect: Effect{Kind: kind, Value: value}})
}

// AddGeneratedEffects appends an effect generator invoked per record at
// execution time.
func (b *RuleBuilder) AddGeneratedEffects(generate func(Record) []Effect) {
	b.effects = append(b.effects, GeneratedEffects{Generate: generate})
}

func (b *RuleBuilder) build() CompiledRule {
	return CompiledRule{Conditions: b.conditions, Effects: b.effects}
}
