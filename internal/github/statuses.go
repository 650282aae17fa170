package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/push-policy-gate/models"
)

func (c *client) CreateStatus(ctx context.Context, repo, sha string, status models.CommitStatus) error {
	_, _, err := withRetry(ctx, func() (*gh.RepoStatus, *gh.Response, error) {
		return c.repositories.CreateStatus(ctx, c.org, repo, sha, toRepoStatus(status))
	})
	return err
}

func toRepoStatus(s models.CommitStatus) gh.RepoStatus {
	rs := gh.RepoStatus{
		State:   gh.Ptr(string(s.State)),
		Context: gh.Ptr(s.Context),
	}
	if s.Description != "" {
		rs.Description = gh.Ptr(s.Description)
	}
	if s.TargetURL != "" {
		rs.TargetURL = gh.Ptr(s.TargetURL)
	}
	return rs
}
