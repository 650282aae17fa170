package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"
)

const (
	maxRetries = 5
	baseDelay  = 1 * time.Second
)

func (c *client) ListAllRepos(ctx context.Context) ([]*gh.Repository, error) {
	var allRepos []*gh.Repository
	opts := &gh.RepositoryListByOrgOptions{
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	for {
		repos, resp, err := withRetry(ctx, func() ([]*gh.Repository, *gh.Response, error) {
			return c.repositories.ListByOrg(ctx, c.org, opts)
		})
		if err != nil {
			return nil, err
		}

		allRepos = append(allRepos, repos...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allRepos, nil
}

// withRetry retries call while GitHub answers with a rate limit error,
// waiting until the limit resets or backing off exponentially.
func withRetry[T any](ctx context.Context, call func() (T, *gh.Response, error)) (T, *gh.Response, error) {
	var zero T

	for attempt := 0; attempt <= maxRetries; attempt++ {
		result, resp, err := call()

		if err == nil {
			return result, resp, nil
		}

		var rateLimitErr *gh.RateLimitError
		ok := errors.As(err, &rateLimitErr)
		if !ok {
			return zero, nil, err
		}

		if attempt == maxRetries {
			return zero, nil, fmt.Errorf("max retries reached: %w", err)
		}

		waitDuration := time.Until(rateLimitErr.Rate.Reset.Time)
		if waitDuration < 0 {
			waitDuration = baseDelay * time.Duration(1<<attempt)
		}

		select {
		case <-time.After(waitDuration):
		case <-ctx.Done():
			return zero, nil, ctx.Err()
		}
	}

	return zero, nil, fmt.Errorf("unexpected retry loop exit")
}
