package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bundlekit/ruleset/pkg/config"
	"github.com/bundlekit/ruleset/pkg/handlers"
	"github.com/bundlekit/ruleset/pkg/logging"
	"github.com/bundlekit/ruleset/pkg/rules"
)

var checkCmd = &cobra.Command{
	Use:   "check <ruleset-file>",
	Short: "Compile a ruleset file and report errors",
	Long: `Check loads a TOML or YAML ruleset file and compiles it with the
standard handler set. Any compile error is reported with the dotted path
of the offending rule node.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.check")

		rawRules, err := config.LoadRuleset(args[0])
		if err != nil {
			pterm.Error.Printfln("failed to load %s: %v", args[0], err)
			return err
		}

		ruleSet, err := rules.NewCompiler(handlers.Default()...).Compile(rawRules)
		if err != nil {
			pterm.Error.Printfln("compile failed: %v", err)
			return err
		}

		logger.Info().
			Str("file", args[0]).
			Int("rules", len(ruleSet.Rules())).
			Msg("Ruleset compiled")

		pterm.Success.Printfln("%s: %d top-level rules, %d shared references",
			args[0], len(ruleSet.Rules()), ruleSet.References().Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
