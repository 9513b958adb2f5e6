package rules

// Handler contributes conditions and effects for the rule keys it owns.
// Handlers are consulted in registration order for every compiled rule,
// whether or not the rule carries any of their keys.
//
// Contract: a handler claims a key by removing it from unhandled and must
// not touch keys it does not own. It may store payloads in refs to
// deduplicate identical configuration across rules. Returning an error
// aborts compilation; the error must carry the dotted rule path.
type Handler interface {
	Contribute(path string, rule RawRule, unhandled *KeySet, b *RuleBuilder, refs *References) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(path string, rule RawRule, unhandled *KeySet, b *RuleBuilder, refs *References) error

// Contribute implements Handler.
func (f HandlerFunc) Contribute(path string, rule RawRule, unhandled *KeySet, b *RuleBuilder, refs *References) error {
	return f(path, rule, unhandled, b, refs)
}
