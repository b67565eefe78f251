package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the request as written and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.app.Resolve(cmd.Context(), commonOptions(cmd))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return zerr.Wrap(err, "failed to encode resolution")
			}
			return nil
		},
	}
}
