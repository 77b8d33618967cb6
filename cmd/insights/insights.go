// Package insights handles the AI commentary command.
package insights

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbqneto/financial-flow/cmd/root"
	"github.com/jbqneto/financial-flow/internal/insights"
	"github.com/jbqneto/financial-flow/internal/report"
)

// Cmd represents the insights command.
var Cmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate AI commentary on spending habits",
	Long: `Summarize the ledger and ask the configured Gemini model for a short
commentary. Requires ai.enabled in the config and a GEMINI_API_KEY.`,
	RunE: insightsFunc,
}

func insightsFunc(cmd *cobra.Command, args []string) error {
	if !root.Cfg.AI.Enabled {
		return fmt.Errorf("AI insights are disabled; set ai.enabled or FINFLOW_AI_ENABLED=true")
	}

	s, _, err := root.OpenSession()
	if err != nil {
		return err
	}

	summary := report.Summarize(s.Transactions())

	ctx := cmd.Context()
	gen, err := insights.NewGenerator(ctx, root.Cfg.AI.APIKey, root.Cfg.AI.Model, root.Log)
	if err != nil {
		return err
	}
	defer gen.Close()

	text, err := gen.Generate(ctx, summary)
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}
