package cli

import (
	"encoding/json"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/noah-isme/scholarship-match-api/internal/dto"
)

var printer = message.NewPrinter(language.English)

func newMatchesCommand(factory BackendFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matches <student-id>",
		Short: "Show the scholarships a student is eligible for",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			explain, _ := cmd.Flags().GetBool("explain")
			return withBackend(cmd, factory, func(b Backend) error {
				resp, err := b.Matches(cmd.Context(), args[0], explain)
				if err != nil {
					return err
				}
				if jsonOutput(cmd) {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(resp)
				}
				printMatches(cmd, resp, explain)
				return nil
			})
		},
	}
	cmd.Flags().Bool("explain", false, "request a generated explanation for every match")
	return cmd
}

func printMatches(cmd *cobra.Command, resp *dto.StudentMatchesResponse, explain bool) {
	out := cmd.OutOrStdout()
	writeLine(out, "%s (%s): %d matches, %s potential aid",
		resp.StudentName, resp.StudentID, resp.TotalMatches, printer.Sprintf("$%d", resp.TotalPotentialAid))
	if len(resp.Matches) == 0 {
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	writeLine(tw, "ID\tNAME\tAMOUNT\tDEADLINE\tREASONS")
	for _, m := range resp.Matches {
		writeLine(tw, "%s\t%s\t%s\t%s\t%s",
			m.Scholarship.ID, m.Scholarship.Name, printer.Sprintf("$%d", m.Scholarship.Amount),
			m.Scholarship.Deadline, strings.Join(m.MatchReasons, "; "))
	}
	_ = tw.Flush()

	if !explain {
		return
	}
	for _, m := range resp.Matches {
		writeLine(out, "\n%s: %s", m.Scholarship.ID, m.Explanation)
	}
}
