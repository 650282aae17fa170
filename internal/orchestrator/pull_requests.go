package orchestrator

import (
	"context"

	"github.com/tracker-tv/push-policy-gate/internal/service"
	"github.com/tracker-tv/push-policy-gate/models"
	"go.uber.org/zap"
)

// PullRequestGate evaluates every open pull request of the organisation and
// optionally reports the verdict back as a commit status.
type PullRequestGate struct {
	log    *zap.SugaredLogger
	repos  service.RepositoryService
	diffs  service.DiffService
	gate   service.GateService
	status service.StatusService
}

// NewPullRequestGate builds the sweep. A nil status service disables
// publishing.
func NewPullRequestGate(
	log *zap.SugaredLogger,
	repos service.RepositoryService,
	diffs service.DiffService,
	gate service.GateService,
	status service.StatusService,
) *PullRequestGate {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &PullRequestGate{log: log, repos: repos, diffs: diffs, gate: gate, status: status}
}

// Run sweeps the organisation. Listing the repositories is the only fatal
// error; a failing repository or pull request is logged and skipped.
func (g *PullRequestGate) Run(ctx context.Context) ([]models.GateResult, error) {
	repos, err := g.repos.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var results []models.GateResult

	for _, repo := range repos {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}

		if repo.Archived {
			g.log.Debugw("skipping archived repository", "repository", repo.FullName)
			continue
		}

		prs, err := g.repos.ListOpenPullRequests(ctx, repo)
		if err != nil {
			g.log.Errorw("listing pull requests failed", "repository", repo.FullName, "error", err)
			continue
		}

		for _, pr := range prs {
			result, ok := g.evaluate(ctx, repo, pr)
			if ok {
				results = append(results, result)
			}
		}
	}

	return results, nil
}

func (g *PullRequestGate) evaluate(ctx context.Context, repo models.Repository, pr models.PullRequest) (models.GateResult, bool) {
	event, err := g.diffs.FromPullRequest(ctx, repo, pr)
	if err != nil {
		g.log.Errorw("fetching pull request diff failed", "repository", repo.FullName, "pull_request", pr.Number, "error", err)
		return models.GateResult{}, false
	}

	action := g.gate.Evaluate(ctx, event)
	result := models.GateResult{Repository: repo, PullRequest: pr, Action: action}

	g.log.Infow("pull request evaluated",
		"repository", repo.FullName,
		"pull_request", pr.Number,
		"action", action.ID,
		"verdict", action.Verdict(),
	)

	if g.status == nil || pr.HeadSHA == "" {
		return result, true
	}

	if err := g.status.Publish(ctx, repo, pr.HeadSHA, action); err != nil {
		g.log.Errorw("publishing status failed", "repository", repo.FullName, "pull_request", pr.Number, "error", err)
		return result, true
	}
	result.Published = true

	return result, true
}
