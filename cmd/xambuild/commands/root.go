// Package commands implements the command line interface for xambuild.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/xambuild/internal/app"
	"go.trai.ch/xambuild/internal/build"
	"go.trai.ch/xambuild/internal/core/domain"
	"go.trai.ch/zerr"
)

const long = `xambuild runs msbuild and nuget against the Xamarin project found in the
project directory.

Actions:
  build                   Build the platform project
  buildAndDeploy          Build and install on the connected device
  clean                   Clean the platform project
  updateAndroidResources  Regenerate Android resource designer files
  androidSign             Build a signed Android package
  listEnvVars             Show the XAMBUILD_* environment variables
  nuget wipe              Clear nuget caches and remove bin/obj folders
  nuget restoreAll        Restore every project below the project directory
  nuget <args...>         Run nuget with the given arguments

Flags override environment variables, which override project settings
from .xambuild.yaml and the built-in defaults.`

// CLI represents the command line interface for xambuild.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
	opts    app.Options
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "xambuild [flags] <action> [args...]",
		Short:         "Build and deploy Xamarin projects from the command line",
		Long:          long,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), c.opts, args)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate(fmt.Sprintf("xambuild version %s (commit %s, built %s)\n",
		build.Version, build.Commit, build.Date))
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return domain.NewExitError(domain.ExitInvalidAction, zerr.Wrap(err, "invalid arguments"))
	})

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for xambuild"

	flags := rootCmd.Flags()
	// Everything after the action belongs to the action, so nuget arguments
	// such as -Source reach nuget untouched.
	flags.SetInterspersed(false)
	flags.StringVarP(&c.opts.Platform, "platform", "p", "",
		"Target platform, android or ios (env "+domain.EnvPlatform+")")
	flags.StringVarP(&c.opts.ProjectDir, "projectDir", "d", "",
		"Project root directory (env "+domain.EnvProjectDir+")")
	flags.StringVarP(&c.opts.Configuration, "configuration", "c", "",
		"Build configuration (env "+domain.EnvConfiguration+")")
	flags.StringVarP(&c.opts.DroidDir, "droidDir", "a", "",
		"Android project directory (env "+domain.EnvDroidDir+")")
	flags.StringVarP(&c.opts.IOSDir, "iosDir", "i", "",
		"iOS project directory (env "+domain.EnvIOSDir+")")

	c.rootCmd = rootCmd
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

// SetOutput redirects help and version output.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
