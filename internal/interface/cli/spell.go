package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/prompt-optimizer/internal/domain/spelling"
)

// NewSpellCmd creates the spell command.
func NewSpellCmd(deps Deps) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "spell [text]",
		Short: "Spell-check a prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			resp := deps.Spelling.Check(cmd.Context(), text)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			if resp.Status != spelling.StatusSuccess {
				return errors.New(resp.Message)
			}

			out := cmd.OutOrStdout()
			icon := successIcon
			if resp.Data.MisspelledCount > 0 {
				icon = warningIcon
			}
			fmt.Fprintf(out, "%s %s %s\n", icon, resp.Message,
				dim(fmt.Sprintf("(%.2f%% of %d words correct)", resp.Data.AccuracyPercentage, resp.Data.TotalWords)))
			for _, w := range resp.Data.MisspelledWords {
				suggestions := dim("no suggestions")
				if len(w.Suggestions) > 0 {
					suggestions = success(strings.Join(w.Suggestions, ", "))
				}
				fmt.Fprintf(out, "  %s %s %s\n", warning(w.Word), dim(fmt.Sprintf("@%d", w.Position)), suggestions)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the spell-check response as JSON")
	return cmd
}
