// Package commands implements the CLI commands for recipe.
package commands

import (
	"context"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"go.trai.ch/recipe/internal/adapters/telemetry/progrock"
	"go.trai.ch/recipe/internal/app"
	"go.trai.ch/recipe/internal/build"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/engine/lifecycle"
	"go.trai.ch/recipe/internal/tui"
)

// CLI represents the command line interface for recipe.
type CLI struct {
	app      *app.App
	recorder *progrock.Recorder
	rootCmd  *cobra.Command
	reported bool
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "recipe",
		Short:         "Drive conan to resolve, generate and import the dependencies of a C++ package",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("recipe-dir", "C", ".", "Directory holding name-version.txt and recipe.yaml")
	rootCmd.PersistentFlags().String("build-dir", "", "Directory for host output and the generated CMake file")
	rootCmd.PersistentFlags().String("output-dir", "", "Root of the imported bin/ and lib/ layout")
	rootCmd.PersistentFlags().Bool("offline", false, "Replay the lockfile instead of invoking conan")
	rootCmd.PersistentFlags().Bool("progress", false, "Show a live view of the lifecycle stages")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newImportCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// WithProgress lets --progress render the stages recorded by r.
func (c *CLI) WithProgress(r *progrock.Recorder) *CLI {
	c.recorder = r
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

// Reported reports whether the last error was already logged by a failing stage.
func (c *CLI) Reported() bool {
	return c.reported
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	recipeDir, _ := cmd.Flags().GetString("recipe-dir")
	buildDir, _ := cmd.Flags().GetString("build-dir")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	offline, _ := cmd.Flags().GetBool("offline")
	return app.RunOptions{
		RecipeDir: recipeDir,
		BuildDir:  buildDir,
		OutputDir: outputDir,
		Offline:   offline,
	}
}

// finish records whether err came out of a failed stage, which has logged it already.
func (c *CLI) finish(res *app.Result, err error) error {
	if err != nil && res != nil {
		c.reported = slices.ContainsFunc(res.Stages, func(s lifecycle.StageReport) bool {
			return s.Status == domain.StageStatusFailed
		})
	}
	return err
}

// track runs op, rendering its stages while it runs when --progress is set.
// The recorder is closed before returning so the display can drain.
func (c *CLI) track(cmd *cobra.Command, op func() (*app.Result, error)) (*app.Result, error) {
	progress, _ := cmd.Flags().GetBool("progress")
	if !progress || c.recorder == nil || c.recorder.Stream() == nil {
		return op()
	}

	c.recorder.Mute()
	c.recorder.Stream().Attach()
	done := make(chan error, 1)
	go func() {
		done <- tui.Run(cmd.Context(), c.recorder.Stream(), cmd.ErrOrStderr())
	}()

	res, err := op()
	_ = c.recorder.Close()
	if uiErr := <-done; err == nil {
		err = uiErr
	}
	return res, err
}
