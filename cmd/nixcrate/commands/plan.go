package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/nixcrate/internal/app"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate the build plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			format, _ := cmd.Flags().GetString("format")
			stdout, _ := cmd.Flags().GetBool("stdout")
			force, _ := cmd.Flags().GetBool("force")
			return c.app.Plan(cmd.Context(), app.PlanOptions{
				Options: commonOptions(cmd),
				Output:  output,
				Format:  format,
				Stdout:  stdout,
				Force:   force,
				Writer:  cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write the plan to this file")
	cmd.Flags().String("format", "", "Plan format (json or yaml)")
	cmd.Flags().Bool("stdout", false, "Print the plan instead of writing it")
	cmd.Flags().BoolP("force", "f", false, "Replace a plan written by an incompatible version")
	return cmd
}
