package github

import (
	"context"
	"errors"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	github "github.com/tracker-tv/push-policy-gate/internal/github/mocks"
)

func TestListOpenPullRequests_Pagination(t *testing.T) {
	ctx := context.Background()
	prSvc := github.NewMockPullRequestsAdapter(t)

	prSvc.
		EXPECT().
		List(mock.Anything, "org-name", "repo-name",
			mock.MatchedBy(func(o *gh.PullRequestListOptions) bool {
				return o.State == "open" && o.Page == 0
			}),
		).
		Once().
		Return(
			[]*gh.PullRequest{
				{Number: gh.Ptr(1), Title: gh.Ptr("PR 1")},
				{Number: gh.Ptr(2), Title: gh.Ptr("PR 2")},
			},
			&gh.Response{NextPage: 2},
			nil,
		)

	prSvc.
		EXPECT().
		List(mock.Anything, "org-name", "repo-name",
			mock.MatchedBy(func(o *gh.PullRequestListOptions) bool {
				return o.State == "open" && o.Page == 2
			}),
		).
		Once().
		Return(
			[]*gh.PullRequest{{Number: gh.Ptr(3), Title: gh.Ptr("PR 3")}},
			&gh.Response{},
			nil,
		)

	c := &client{pullRequests: prSvc, org: "org-name"}

	prs, err := c.ListOpenPullRequests(ctx, "repo-name")

	assert.NoError(t, err)
	assert.Len(t, prs, 3)
	assert.Equal(t, 1, prs[0].GetNumber())
	assert.Equal(t, 3, prs[2].GetNumber())
}

func TestListOpenPullRequests_Error(t *testing.T) {
	ctx := context.Background()
	prSvc := github.NewMockPullRequestsAdapter(t)

	prSvc.
		EXPECT().
		List(mock.Anything, "org-name", "repo-name", mock.Anything).
		Once().
		Return(nil, nil, errors.New("API error"))

	c := &client{pullRequests: prSvc, org: "org-name"}

	prs, err := c.ListOpenPullRequests(ctx, "repo-name")

	assert.Error(t, err)
	assert.Nil(t, prs)
	assert.Contains(t, err.Error(), "API error")
}

func TestGetPullRequestDiff_Success(t *testing.T) {
	ctx := context.Background()
	prSvc := github.NewMockPullRequestsAdapter(t)

	raw := "diff --git a/app.js b/app.js\n+console.log(1)\n"

	prSvc.
		EXPECT().
		GetRaw(mock.Anything, "org-name", "repo-name", 7, gh.RawOptions{Type: gh.Diff}).
		Once().
		Return(raw, &gh.Response{}, nil)

	c := &client{pullRequests: prSvc, org: "org-name"}

	diff, err := c.GetPullRequestDiff(ctx, "repo-name", 7)

	assert.NoError(t, err)
	assert.Equal(t, raw, diff)
}

func TestGetPullRequestDiff_Error(t *testing.T) {
	ctx := context.Background()
	prSvc := github.NewMockPullRequestsAdapter(t)

	prSvc.
		EXPECT().
		GetRaw(mock.Anything, "org-name", "repo-name", 7, mock.Anything).
		Once().
		Return("", nil, errors.New("not found"))

	c := &client{pullRequests: prSvc, org: "org-name"}

	diff, err := c.GetPullRequestDiff(ctx, "repo-name", 7)

	assert.Error(t, err)
	assert.Empty(t, diff)
}
