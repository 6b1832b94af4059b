package cli

import (
	"github.com/spf13/cobra"
	"sigs.k8s.io/release-utils/version"
)

// New returns the root intake command. Run without a subcommand, it runs the
// interactive demonstration.
func New() *cobra.Command {
	p := &demoParams{}
	cmd := &cobra.Command{
		Use:               "intake",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Short:             "Ask patient or doctor intake questions, composed several ways",
		Long: `Ask a patient or a doctor a short series of intake questions.

The same questions are asked once per composition style: a slice of named
functions, named functions chained into one function value, inline anonymous
functions, and closures. Every style asks the same things in the same order
and keeps only the answer to the last question.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return p.run(cmd)
		},
	}
	p.addFlagsTo(cmd)

	cmd.AddCommand(
		cmdGraph(),
		cmdStyles(),
		version.Version(),
	)

	return cmd
}
