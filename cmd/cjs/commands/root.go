// Package commands implements the CLI commands for the cjs module loader.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cjs/internal/app"
	"go.trai.ch/cjs/internal/build"
	"go.trai.ch/cjs/internal/core/domain"
)

// CLI represents the command line interface for cjs.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cjs",
		Short:         "Run CommonJS modules from directories and archives",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Project file to read (default: nearest "+domain.ConfigFileName+")")
	rootCmd.PersistentFlags().StringArrayP("path", "p", nil, "Additional search root, directory or archive (repeatable)")
	rootCmd.PersistentFlags().StringArray("ext", nil, "Extension to try when locating a module, in order (repeatable)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Log module resolution and loading")
	rootCmd.PersistentFlags().Bool("trace", false, "Log a timing line for every module load")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newEvalCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the destination of command output and usage. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// runOptions collects the persistent flags.
func runOptions(cmd *cobra.Command) app.RunOptions {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	paths, _ := flags.GetStringArray("path")
	exts, _ := flags.GetStringArray("ext")
	debug, _ := flags.GetBool("debug")
	trace, _ := flags.GetBool("trace")

	return app.RunOptions{
		ConfigPath: configPath,
		Flags: domain.Options{
			Extensions: exts,
			Paths:      paths,
			Debug:      debug,
			Trace:      trace,
		},
	}
}
