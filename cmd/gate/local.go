package main

import (
	"github.com/spf13/cobra"
	"github.com/tracker-tv/push-policy-gate/internal/service"
)

func newLocalCmd(a *app) *cobra.Command {
	var repoPath, base, head string

	cmd := &cobra.Command{
		Use:   "local",
		Short: "Evaluate the changes between two revisions of a local repository",
		Long: `Evaluate the changes between two revisions of a local repository.

Without --base the head commit is compared to its first parent.`,
		Example: `  gate local --base origin/main --head HEAD`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gate, err := a.gate()
			if err != nil {
				return err
			}

			event, err := service.NewDiffService(nil).FromLocal(cmd.Context(), repoPath, base, head)
			if err != nil {
				return err
			}

			return a.finish(gate.Evaluate(cmd.Context(), event))
		},
	}

	cmd.Flags().StringVar(&repoPath, "repo", ".", "path to the git repository")
	cmd.Flags().StringVar(&base, "base", "", "base revision (defaults to the first parent of head)")
	cmd.Flags().StringVar(&head, "head", "HEAD", "head revision")
	return cmd
}
