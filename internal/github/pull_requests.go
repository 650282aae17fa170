package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) ListOpenPullRequests(ctx context.Context, repo string) ([]*gh.PullRequest, error) {
	var all []*gh.PullRequest
	opts := &gh.PullRequestListOptions{
		State: "open",
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	for {
		prs, resp, err := withRetry(ctx, func() ([]*gh.PullRequest, *gh.Response, error) {
			return c.pullRequests.List(ctx, c.org, repo, opts)
		})
		if err != nil {
			return nil, err
		}

		all = append(all, prs...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// GetPullRequestDiff returns the unified diff of a pull request.
func (c *client) GetPullRequestDiff(ctx context.Context, repo string, number int) (string, error) {
	raw, _, err := withRetry(ctx, func() (string, *gh.Response, error) {
		return c.pullRequests.GetRaw(ctx, c.org, repo, number, gh.RawOptions{Type: gh.Diff})
	})
	return raw, err
}
