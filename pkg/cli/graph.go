package cli

import (
	"fmt"

	"github.com/funcdemo/intake/pkg/question/graph"
	"github.com/funcdemo/intake/pkg/role"
	"github.com/spf13/cobra"
)

func cmdGraph() *cobra.Command {
	var roleName string
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Generate a DOT graph of the questions asked of a role",
		Long: `Generate a DOT graph of the questions asked of a role.

  intake graph --role patient | dot -Tsvg > patient.svg
`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dot, err := graph.Dot(cmd.Context(), role.Resolve(roleName))
			if err != nil {
				return fmt.Errorf("generating DOT: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), dot)
			return nil
		},
	}

	cmd.Flags().StringVar(&roleName, "role", string(role.Patient), "role to graph; anything other than \"patient\" is a doctor")
	return cmd
}
