package cli

import (
	"encoding/json"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newScholarshipsCommand(factory BackendFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "scholarships",
		Short: "List the scholarship catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBackend(cmd, factory, func(b Backend) error {
				resp, err := b.Scholarships(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput(cmd) {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(resp)
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				writeLine(tw, "ID\tNAME\tPROVIDER\tAMOUNT\tDEADLINE")
				for _, s := range resp.Scholarships {
					writeLine(tw, "%s\t%s\t%s\t%s\t%s", s.ID, s.Name, s.Provider, printer.Sprintf("$%d", s.Amount), s.Deadline)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				writeLine(cmd.OutOrStdout(), "%d scholarships", resp.Total)
				return nil
			})
		},
	}
}

func newExplanationsCommand(factory BackendFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explanations",
		Short: "Manage cached match explanations",
	}
	purge := &cobra.Command{
		Use:   "purge [student-id]",
		Short: "Drop cached explanations for one student, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			studentID := ""
			if len(args) == 1 {
				studentID = args[0]
			}
			return withBackend(cmd, factory, func(b Backend) error {
				if err := b.PurgeExplanations(cmd.Context(), studentID); err != nil {
					return err
				}
				if studentID == "" {
					writeLine(cmd.OutOrStdout(), "purged all cached explanations")
				} else {
					writeLine(cmd.OutOrStdout(), "purged cached explanations for %s", studentID)
				}
				return nil
			})
		},
	}
	cmd.AddCommand(purge)
	return cmd
}
