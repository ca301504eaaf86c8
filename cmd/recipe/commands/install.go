package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/recipe/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Resolve dependencies, generate the CMake file and import runtime artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.track(cmd, func() (*app.Result, error) {
				return c.app.Install(cmd.Context(), runOptions(cmd))
			})
			if err := c.finish(res, err); err != nil {
				return err
			}
			printResolved(cmd.OutOrStdout(), res)
			printGenerated(cmd.OutOrStdout(), res)
			printImported(cmd.OutOrStdout(), res)
			printPackage(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func printResolved(w io.Writer, res *app.Result) {
	_, _ = fmt.Fprintf(w, "resolved %d dependencies\n", len(res.Dependencies))
	for _, dep := range res.Dependencies {
		_, _ = fmt.Fprintf(w, "  %s (%s) %s\n", dep.Ref, dep.BuildSystemName, dep.SlashRootPath())
	}
}

func printGenerated(w io.Writer, res *app.Result) {
	_, _ = fmt.Fprintf(w, "generated %s\n", res.GeneratedFile)
}

func printImported(w io.Writer, res *app.Result) {
	_, _ = fmt.Fprintf(w, "imported %d artifacts into %s\n", len(res.Imported), res.Settings.OutputDir)
}

func printPackage(w io.Writer, res *app.Result) {
	_, _ = fmt.Fprintf(w, "package %s id %s\n", res.Recipe.Descriptor.Ref(), res.PackageID)
}
