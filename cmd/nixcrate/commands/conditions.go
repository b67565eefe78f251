package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func (c *CLI) newConditionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conditions [package]",
		Short: "Print the condition of every feature and dependency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := c.app.Conditions(cmd.Context(), commonOptions(cmd))
			if err != nil {
				return err
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("PACKAGE", "ITEM", "CONDITION")
			for _, row := range rows {
				if len(args) == 1 && !strings.HasPrefix(string(row.Package), args[0]) {
					continue
				}
				t.Row(string(row.Package), row.Item, row.Condition)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return err
		},
	}
	return cmd
}
