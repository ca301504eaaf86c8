package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/recipe/internal/app"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the package name, version, identity and exported libraries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.track(cmd, func() (*app.Result, error) {
				return c.app.Info(cmd.Context(), runOptions(cmd))
			})
			if err := c.finish(res, err); err != nil {
				return err
			}

			d := res.Recipe.Descriptor
			semver := d.SemVer()
			if semver == "" {
				semver = "(not semver)"
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "name:       %s\n", d.Name)
			_, _ = fmt.Fprintf(w, "version:    %s\n", d.Version)
			_, _ = fmt.Fprintf(w, "semver:     %s\n", semver)
			_, _ = fmt.Fprintf(w, "package_id: %s\n", res.PackageID)
			_, _ = fmt.Fprintf(w, "libs:       [%s]\n", strings.Join(res.Info.Libs, ", "))
			_, _ = fmt.Fprintf(w, "host:       conan %s\n", res.Recipe.HostVersion)
			return nil
		},
	}
}
