// Package display renders compiled rule trees and classification results
// for terminal output.
package display

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/bundlekit/ruleset/pkg/rules"
)

// Renderer renders rule engine structures with rich terminal output
type Renderer struct{}

// NewRenderer creates a new terminal renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderRuleTree returns a textual tree of a compiled rule set, showing
// each rule's conditions, effects and nested groups in evaluation order.
func (r *Renderer) RenderRuleTree(rs *rules.RuleSet) (string, error) {
	root := pterm.TreeNode{
		Text:     "ruleSet",
		Children: ruleNodes(rs.Rules()),
	}
	return pterm.DefaultTree.WithRoot(root).Srender()
}

func ruleNodes(list []rules.CompiledRule) []pterm.TreeNode {
	nodes := make([]pterm.TreeNode, 0, len(list))
	for i := range list {
		rule := &list[i]
		node := pterm.TreeNode{Text: fmt.Sprintf("rule[%d]", i)}

		for _, rc := range rule.Conditions {
			text := fmt.Sprintf("when %s", rc.Path)
			if rc.Condition.MatchWhenEmpty {
				text += " (matches when absent)"
			}
			node.Children = append(node.Children, pterm.TreeNode{Text: text})
		}

		for _, source := range rule.Effects {
			switch e := source.(type) {
			case rules.StaticEffect:
				node.Children = append(node.Children, pterm.TreeNode{
					Text: fmt.Sprintf("effect %s = %v", e.Effect.Kind, e.Effect.Value),
				})
			case rules.GeneratedEffects:
				node.Children = append(node.Children, pterm.TreeNode{Text: "effects <generated>"})
			}
		}

		if len(rule.Rules) > 0 {
			node.Children = append(node.Children, pterm.TreeNode{
				Text:     "rules (all match)",
				Children: ruleNodes(rule.Rules),
			})
		}
		if len(rule.OneOf) > 0 {
			node.Children = append(node.Children, pterm.TreeNode{
				Text:     "oneOf (first match wins)",
				Children: ruleNodes(rule.OneOf),
			})
		}

		nodes = append(nodes, node)
	}
	return nodes
}

// RenderEffects returns the ordered effect list as a table.
func (r *Renderer) RenderEffects(effects []rules.Effect) (string, error) {
	if len(effects) == 0 {
		return pterm.Sprint(pterm.Gray("no effects")), nil
	}

	data := pterm.TableData{{"#", "Kind", "Value"}}
	for i, effect := range effects {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			effect.Kind,
			fmt.Sprintf("%v", effect.Value),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// RenderReferences returns the frozen reference map as a table, in
// insertion order.
func (r *Renderer) RenderReferences(refs *rules.References) (string, error) {
	if refs.Len() == 0 {
		return pterm.Sprint(pterm.Gray("no shared references")), nil
	}

	data := pterm.TableData{{"Ident", "Payload"}}
	for _, key := range refs.Keys() {
		value, _ := refs.Get(key)
		data = append(data, []string{key, fmt.Sprintf("%v", value)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
