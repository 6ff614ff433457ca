package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

var errNoScript = zerr.New("eval needs a script file or --code")

func (c *CLI) newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Run a script that bootstraps the loader with initRequire",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, _ := cmd.Flags().GetString("code")
			name := "<eval>"

			switch {
			case len(args) == 1:
				data, err := os.ReadFile(args[0])
				if err != nil {
					return zerr.With(zerr.Wrap(err, "failed to read script"), "path", args[0])
				}
				name, code = args[0], string(data)
			case code == "":
				return errNoScript
			}
			return c.app.Eval(cmd.Context(), name, code, runOptions(cmd))
		},
	}
	cmd.Flags().String("code", "", "Script source to run instead of a file")
	return cmd
}
