package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bundlekit/ruleset/pkg/config"
	"github.com/bundlekit/ruleset/pkg/display"
	"github.com/bundlekit/ruleset/pkg/handlers"
	"github.com/bundlekit/ruleset/pkg/registry"
	"github.com/bundlekit/ruleset/pkg/rules"
)

var explainCmd = &cobra.Command{
	Use:   "explain <ruleset-file>",
	Short: "Show the compiled rule tree for a ruleset file",
	Long: `Explain compiles a ruleset file and renders the resulting rule tree:
conditions in evaluation order, effects, nested groups and the shared
reference map.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawRules, err := config.LoadRuleset(args[0])
		if err != nil {
			return err
		}
		ruleSet, err := rules.NewCompiler(handlers.Default()...).Compile(rawRules)
		if err != nil {
			return err
		}

		renderer := display.NewRenderer()
		tree, err := renderer.RenderRuleTree(ruleSet)
		if err != nil {
			return err
		}
		pterm.Println(tree)

		refs, err := renderer.RenderReferences(ruleSet.References())
		if err != nil {
			return err
		}
		pterm.Println(refs)
		return nil
	},
}

var handlersCmd = &cobra.Command{
	Use:   "handlers",
	Short: "List registered handler factories",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range registry.ListHandlerFactories() {
			pterm.Println(pterm.Sprintf("%s %s", pterm.Green("*"), name))
		}
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(handlersCmd)
}
