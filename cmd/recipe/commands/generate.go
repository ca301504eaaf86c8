package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/recipe/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Resolve dependencies and write conan-packages.cmake",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.track(cmd, func() (*app.Result, error) {
				return c.app.Generate(cmd.Context(), runOptions(cmd))
			})
			if err := c.finish(res, err); err != nil {
				return err
			}
			printResolved(cmd.OutOrStdout(), res)
			printGenerated(cmd.OutOrStdout(), res)
			return nil
		},
	}
}
