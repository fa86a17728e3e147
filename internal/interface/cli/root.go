// Package cli implements the promptctl command-line interface.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yanqian/prompt-optimizer/internal/domain/energy"
	"github.com/yanqian/prompt-optimizer/internal/domain/report"
	"github.com/yanqian/prompt-optimizer/internal/domain/spelling"
)

// Version is set at build time.
var Version = "dev"

var (
	successIcon = color.New(color.FgGreen).Sprint("✓")
	warningIcon = color.New(color.FgYellow).Sprint("⚠")

	success = color.New(color.FgGreen).SprintFunc()
	warning = color.New(color.FgYellow).SprintFunc()
	info    = color.New(color.FgCyan).SprintFunc()
	dim     = color.New(color.Faint).SprintFunc()

	title = cases.Title(language.English)
)

// Deps are the domain services the commands run against.
type Deps struct {
	Reports   report.Builder
	Estimator energy.Estimator
	Spelling  spelling.Service
}

// NewRootCmd creates the root command.
func NewRootCmd(deps Deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "promptctl",
		Short: "Shrink LLM prompts and estimate the energy they cost",
		Long: `promptctl runs the prompt optimizer offline.

It strips polite and filler clauses, produces conservative, aggressive and
balanced reductions, and estimates tokens, energy and CO2 for each.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewAnalyzeCmd(deps))
	rootCmd.AddCommand(NewEstimateCmd(deps))
	rootCmd.AddCommand(NewBatchCmd(deps))
	rootCmd.AddCommand(NewSpellCmd(deps))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "promptctl %s\n", Version)
		},
	}
}

// readInput joins the positional arguments, or reads stdin when there are none.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New("no input: pass text as arguments or on stdin")
	}
	return text, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
