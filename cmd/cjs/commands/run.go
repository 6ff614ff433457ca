package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "Run files as main modules",
		Long: "Run each file as the main module of its own loader. Files run concurrently.\n" +
			"Without files, the main module of the project file is run.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runOptions(cmd)
			opts.Watch, _ = cmd.Flags().GetBool("watch")
			return c.app.Run(cmd.Context(), args, opts)
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Run again whenever a source below the main directories or search paths changes")
	return cmd
}
