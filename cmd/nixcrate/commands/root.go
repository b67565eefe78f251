// Package commands implements the CLI commands for nixcrate.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/nixcrate/internal/app"
	"go.trai.ch/nixcrate/internal/build"
	"go.trai.ch/nixcrate/internal/core/domain"
)

// CLI represents the command line interface for nixcrate.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "nixcrate",
		Short:         "Generate nix build plans for cargo workspaces",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.DefaultConfigFile, "Path to the configuration file")
	rootCmd.PersistentFlags().StringP("request", "r", "", "Path to the resolve request, overriding the configuration")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newConditionsCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func commonOptions(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	request, _ := cmd.Flags().GetString("request")
	return app.Options{ConfigPath: configPath, Request: request}
}
