package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/yanqian/prompt-optimizer/internal/domain/report"
	"github.com/yanqian/prompt-optimizer/pkg/util"
)

// BatchResult is the per-file outcome of a batch run.
type BatchResult struct {
	Path                    string             `json:"path"`
	Model                   string             `json:"model"`
	TokenCounts             report.TokenCounts `json:"token_counts"`
	EnergySavedConservative float64            `json:"energy_saved_conservative"`
	EnergySavedAggressive   float64            `json:"energy_saved_aggressive"`
	EnergySavedBalanced     float64            `json:"energy_saved_balanced"`
	Error                   string             `json:"error,omitempty"`
}

// NewBatchCmd creates the batch command.
func NewBatchCmd(deps Deps) *cobra.Command {
	var (
		model    string
		asJSON   bool
		progress bool
	)
	cmd := &cobra.Command{
		Use:   "batch <glob>",
		Short: "Analyze every prompt file matching a glob",
		Long: `Analyze every file matching a doublestar glob, one prompt per file.

Examples:
  promptctl batch 'prompts/**/*.txt'
  promptctl batch 'testdata/*.md' --model gpt-3.5-turbo --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := matchFiles(args[0])
			if err != nil {
				return err
			}

			started := util.NowUTC()
			var bar *progressbar.ProgressBar
			if progress && !asJSON {
				bar = progressbar.NewOptions(len(files),
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionSetWidth(40),
					progressbar.OptionShowCount(),
					progressbar.OptionSetDescription("Analyzing"),
					progressbar.OptionClearOnFinish(),
				)
			}

			results := make([]BatchResult, 0, len(files))
			for _, path := range files {
				results = append(results, analyzeFile(cmd, deps, path, model))
				if bar != nil {
					_ = bar.Add(1)
				}
			}
			if bar != nil {
				_ = bar.Finish()
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			printBatch(cmd, results, util.NowUTC().Sub(started))
			return nil
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "", "model name used for the energy cost (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print per-file results as JSON")
	cmd.Flags().BoolVar(&progress, "progress", true, "show a progress bar on stderr")
	return cmd
}

// matchFiles expands pattern and keeps regular files, sorted.
func matchFiles(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob %q", pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expand glob: %w", err)
	}
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, m)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files match %q", pattern)
	}
	sort.Strings(files)
	return files, nil
}

func analyzeFile(cmd *cobra.Command, deps Deps, path, model string) BatchResult {
	result := BatchResult{Path: path, Model: model}
	data, err := os.ReadFile(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	rep, err := deps.Reports.Build(cmd.Context(), string(data), model)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Model = rep.Model
	result.TokenCounts = rep.TokenCounts
	result.EnergySavedConservative = rep.EnergySavedConservative
	result.EnergySavedAggressive = rep.EnergySavedAggressive
	result.EnergySavedBalanced = rep.EnergySavedBalanced
	return result
}

func printBatch(cmd *cobra.Command, results []BatchResult, elapsed time.Duration) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tTOKENS\tBALANCED\tSAVED mWh (C/A/B)")

	var (
		failed                 int
		original, balanced     int
		savedC, savedA, savedB float64
	)
	for _, r := range results {
		if r.Error != "" {
			failed++
			fmt.Fprintf(tw, "%s\t-\t-\t%s\n", r.Path, warning(r.Error))
			continue
		}
		original += r.TokenCounts.Original
		balanced += r.TokenCounts.Balanced
		savedC += r.EnergySavedConservative
		savedA += r.EnergySavedAggressive
		savedB += r.EnergySavedBalanced
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.3f / %.3f / %.3f\n", r.Path,
			r.TokenCounts.Original, r.TokenCounts.Balanced,
			r.EnergySavedConservative, r.EnergySavedAggressive, r.EnergySavedBalanced)
	}
	_ = tw.Flush()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s %d files (%d failed) in %s\n", successIcon, len(results), failed, elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "%s %d -> %d tokens (balanced)\n", info("Total:"), original, balanced)
	fmt.Fprintf(out, "%s %.3f / %.3f / %.3f mWh\n", info("Saved (C/A/B):"),
		util.Round(savedC, 3), util.Round(savedA, 3), util.Round(savedB, 3))
}
