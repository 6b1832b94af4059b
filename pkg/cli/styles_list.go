package cli

import (
	"fmt"

	"github.com/funcdemo/intake/pkg/cli/internal/wrapped"
	"github.com/funcdemo/intake/pkg/cli/styles"
	"github.com/funcdemo/intake/pkg/demo"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func cmdStyles() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the composition styles a demonstration can run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			defaults := demo.StyleNames(demo.DefaultStyles())

			fmt.Fprintln(out, styles.Accented().Render("Composition styles"))
			fmt.Fprintln(out, styles.FaintAccent().Render(wrapped.Repeat("─")))
			for _, s := range demo.Styles() {
				name := styles.Bold().Render(s.Name)
				if lo.Contains(defaults, s.Name) {
					name += " " + styles.Faint().Render("(default)")
				}
				fmt.Fprintln(out, name)
				wrapped.Fprintln(out, "  "+s.Description)
			}

			return nil
		},
	}
}
