package rules

// Exec evaluates every top-level rule against the record, in declaration
// order, and returns the combined effect list. Top-level rules are always
// all evaluated; oneOf short-circuiting only applies within a single
// rule's own oneOf group. Exec is a pure function of the compiled tree and
// the record: repeated calls with the same record yield identical,
// order-stable effect lists.
func (rs *RuleSet) Exec(rec Record) []Effect {
	var effects []Effect
	for i := range rs.rules {
		execRule(&rs.rules[i], rec, &effects)
	}
	return effects
}

// execRule evaluates one compiled rule and appends the effects of every
// matching node to out. The return value reports whether this rule's own
// conditions passed, independent of nested groups; it exists solely to
// drive a parent's oneOf short-circuit.
func execRule(rule *CompiledRule, rec Record, out *[]Effect) bool {
	for _, rc := range rule.Conditions {
		value, ok := rc.Path.Resolve(rec)
		if !ok {
			if !rc.Condition.MatchWhenEmpty {
				return false
			}
			continue
		}
		if !rc.Condition.Predicate(value) {
			return false
		}
	}

	for _, source := range rule.Effects {
		switch e := source.(type) {
		case StaticEffect:
			*out = append(*out, e.Effect)
		case GeneratedEffects:
			*out = append(*out, e.Generate(rec)...)
		}
	}

	for i := range rule.Rules {
		execRule(&rule.Rules[i], rec, out)
	}

	for i := range rule.OneOf {
		if execRule(&rule.OneOf[i], rec, out) {
			break
		}
	}

	return true
}
