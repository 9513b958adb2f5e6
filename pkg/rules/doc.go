// Package rules implements the rule compilation and execution engine used
// by the build-configuration layer. A declarative, arbitrarily nested list
// of rules is compiled once at configuration-load time into an immutable
// rule tree, which is then executed once per classified module to produce
// an ordered list of build directives (effects).
//
// # Conditions
//
// A condition describes how one record attribute is matched:
//
//   - `""` - matches the empty string (and absent values)
//   - `"src/"` - string prefix match
//   - a *regexp.Regexp - regular expression match
//   - a func(any) bool - arbitrary predicate
//   - a list - OR combination of its items
//   - `{ or = [...], and = [...], not = ... }` - boolean combinators
//
// Every condition carries a MatchWhenEmpty flag that decides whether it is
// satisfied when the target attribute is absent from the record.
//
// # Rules
//
// A rule combines conditions with effects and two kinds of nested groups:
// `rules` children are all executed when the parent matches, `oneOf`
// children are executed in order until the first one matches. The engine
// itself is property-agnostic: all domain vocabulary (test, use, issuer,
// ...) is contributed by registered handlers during compilation.
//
// Compilation is a one-shot synchronous pass; any failure is fatal to the
// configuration load. The compiled tree is immutable and safe to share
// across concurrent classification calls.
package rules
