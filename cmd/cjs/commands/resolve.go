package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <ids...>",
		Short: "Print where module identifiers resolve to, without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			main, _ := cmd.Flags().GetString("main")
			names, err := c.app.Resolve(cmd.Context(), main, args, runOptions(cmd))
			if err != nil {
				return err
			}
			for _, name := range names {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringP("main", "m", "", "Main file identifiers are resolved against (default: project main)")
	return cmd
}
