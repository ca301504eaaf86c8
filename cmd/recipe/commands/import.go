package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/recipe/internal/app"
)

func (c *CLI) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Resolve dependencies and copy their runtime artifacts into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.track(cmd, func() (*app.Result, error) {
				return c.app.Import(cmd.Context(), runOptions(cmd))
			})
			if err := c.finish(res, err); err != nil {
				return err
			}
			printImported(cmd.OutOrStdout(), res)
			return nil
		},
	}
}
