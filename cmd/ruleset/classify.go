package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/bundlekit/ruleset/pkg/config"
	"github.com/bundlekit/ruleset/pkg/display"
	"github.com/bundlekit/ruleset/pkg/handlers"
	"github.com/bundlekit/ruleset/pkg/logging"
	"github.com/bundlekit/ruleset/pkg/rules"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <ruleset-file> <records-file>",
	Short: "Classify module records against a compiled ruleset",
	Long: `Classify compiles the ruleset once, then executes it against every
record in the records file (a YAML or JSON list of module attribute
mappings), printing the ordered effect list each record receives.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.classify")

		rawRules, err := config.LoadRuleset(args[0])
		if err != nil {
			return err
		}
		ruleSet, err := rules.NewCompiler(handlers.Default()...).Compile(rawRules)
		if err != nil {
			return err
		}
		records, err := config.LoadRecords(args[1])
		if err != nil {
			return err
		}

		logger.Info().
			Int("rules", len(ruleSet.Rules())).
			Int("records", len(records)).
			Msg("Classifying records")

		renderer := display.NewRenderer()
		for i, rec := range records {
			effects := ruleSet.Exec(rec)

			pterm.Info.Printfln("record[%d] %s: %d effects", i, recordLabel(rec), len(effects))
			out, err := renderer.RenderEffects(effects)
			if err != nil {
				return err
			}
			pterm.Println(out)
		}
		return nil
	},
}

// recordLabel picks a human-readable identifier for a record.
func recordLabel(rec rules.Record) string {
	if resource, ok := rec["resource"].(string); ok {
		return resource
	}
	return fmt.Sprintf("<%d attributes>", len(rec))
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
