package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tracker-tv/push-policy-gate/internal/github"
	"github.com/tracker-tv/push-policy-gate/internal/orchestrator"
	"github.com/tracker-tv/push-policy-gate/internal/service"
	"github.com/tracker-tv/push-policy-gate/models"
)

var errNoOrg = errors.New("GATE_GITHUB_ORG is not set")

func newPullsCmd(a *app) *cobra.Command {
	var publish bool

	cmd := &cobra.Command{
		Use:   "pulls",
		Short: "Evaluate every open pull request of the GitHub organisation",
		Example: `  GATE_GITHUB_ORG=my-org GATE_GITHUB_PAT=... gate pulls --publish`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.env.GithubOrg == "" {
				return errNoOrg
			}

			gate, err := a.gate()
			if err != nil {
				return err
			}

			ghClient := github.New(a.env.GithubPAT, a.env.GithubOrg)

			var status service.StatusService
			if publish {
				status = service.NewStatusService(ghClient)
			}

			bot := orchestrator.NewPullRequestGate(
				a.log,
				service.NewRepositoriesService(ghClient),
				service.NewDiffService(ghClient),
				gate,
				status,
			)

			results, err := bot.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("sweeping %s: %w", a.env.GithubOrg, err)
			}

			actions := make([]*models.Action, 0, len(results))
			for _, r := range results {
				actions = append(actions, r.Action)
			}
			return a.finish(actions...)
		},
	}

	cmd.Flags().BoolVar(&publish, "publish", false, "publish the verdict as a commit status")
	return cmd
}
