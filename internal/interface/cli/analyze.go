package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/prompt-optimizer/internal/domain/reduction"
	"github.com/yanqian/prompt-optimizer/internal/domain/report"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd(deps Deps) *cobra.Command {
	var (
		model   string
		asJSON  bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "analyze [prompt]",
		Short: "Reduce a prompt and report the energy saved by each variant",
		Long: `Reduce a prompt with every policy and report tokens, energy and CO2.

The prompt is read from the arguments, or from stdin when none are given.

Examples:
  promptctl analyze "Could you please write a short story about a robot?"
  cat prompt.txt | promptctl analyze --model claude-3-opus --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			rep, err := deps.Reports.Build(cmd.Context(), prompt, model)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), rep)
			}
			printReport(cmd.OutOrStdout(), rep, verbose)
			return nil
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "", "model name used for the energy cost (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full report as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include the part-of-speech breakdown")
	return cmd
}

func printReport(w io.Writer, rep report.Report, verbose bool) {
	fmt.Fprintf(w, "%s %s\n", info("Model:"), rep.Model)
	if len(rep.RemovedClauses) > 0 {
		fmt.Fprintf(w, "%s %s\n", info("Removed clauses:"), strings.Join(rep.RemovedClauses, ", "))
	}
	fmt.Fprintf(w, "%s %d tokens, %.3f mWh, %.6f g CO2\n\n",
		info("Original:"), rep.TokenCounts.Original, rep.OriginalEnergy, rep.CO2EmissionOriginal)

	rows := []struct {
		variant reduction.Variant
		tokens  int
		saved   float64
		co2     float64
	}{
		{reduction.Conservative, rep.TokenCounts.Conservative, rep.EnergySavedConservative, rep.CO2EmissionConservative},
		{reduction.Aggressive, rep.TokenCounts.Aggressive, rep.EnergySavedAggressive, rep.CO2EmissionAggressive},
		{reduction.Balanced, rep.TokenCounts.Balanced, rep.EnergySavedBalanced, rep.CO2EmissionBalanced},
	}
	for _, row := range rows {
		icon := successIcon
		savedText := success(fmt.Sprintf("saved %.3f mWh", row.saved))
		if row.saved < 0 {
			icon = warningIcon
			savedText = warning(fmt.Sprintf("costs %.3f mWh more", -row.saved))
		}
		fmt.Fprintf(w, "%s %s %s\n", icon, title.String(string(row.variant)),
			dim(fmt.Sprintf("(%d tokens, %.6f g CO2)", row.tokens, row.co2)))
		fmt.Fprintf(w, "  %s\n", rep.Variant(row.variant))
		fmt.Fprintf(w, "  %s\n", savedText)
	}

	if verbose {
		fmt.Fprintf(w, "\n%s\n", info("Important words:"))
		for _, word := range rep.ImportantWords {
			fmt.Fprintf(w, "  %s %s\n", word.Word, dim(word.Tag))
		}
		fmt.Fprintf(w, "%s\n", info("Stopwords:"))
		for _, hit := range rep.StopwordsFound {
			fmt.Fprintf(w, "  %s %s\n", hit.Word, dim(hit.Tag+" "+hit.Reason))
		}
	}
}

// NewEstimateCmd creates the estimate command.
func NewEstimateCmd(deps Deps) *cobra.Command {
	var (
		model  string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "estimate [text]",
		Short: "Estimate tokens, energy and CO2 of a text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			est := deps.Estimator.Estimate(text, model).Rounded()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), est)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n%s %d\n%s %.6f Wh (%.3f mWh)\n%s %.6f g\n",
				info("Model:"), est.Model,
				info("Tokens:"), est.Tokens,
				info("Energy:"), est.EnergyWh, est.EnergyMWh,
				info("CO2:"), est.CO2Grams)
			return nil
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "", "model name used for the energy cost (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the estimate as JSON")
	return cmd
}
