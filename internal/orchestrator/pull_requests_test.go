package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	serviceMocks "github.com/tracker-tv/push-policy-gate/internal/service/mocks"
	"github.com/tracker-tv/push-policy-gate/models"
	"go.uber.org/zap/zaptest"
)

type fixture struct {
	repos  *serviceMocks.MockRepositoryService
	diffs  *serviceMocks.MockDiffService
	gate   *serviceMocks.MockGateService
	status *serviceMocks.MockStatusService
}

func newFixture(t *testing.T) *fixture {
	return &fixture{
		repos:  serviceMocks.NewMockRepositoryService(t),
		diffs:  serviceMocks.NewMockDiffService(t),
		gate:   serviceMocks.NewMockGateService(t),
		status: serviceMocks.NewMockStatusService(t),
	}
}

func (f *fixture) bot(t *testing.T, publish bool) *PullRequestGate {
	log := zaptest.NewLogger(t).Sugar()
	if publish {
		return NewPullRequestGate(log, f.repos, f.diffs, f.gate, f.status)
	}
	return NewPullRequestGate(log, f.repos, f.diffs, f.gate, nil)
}

func verdict(t *testing.T, v models.Verdict) *models.Action {
	t.Helper()
	a := models.NewAction(models.PushEvent{}, nil)
	require.NoError(t, a.Finalize(v))
	return a
}

func TestNewPullRequestGate(t *testing.T) {
	f := newFixture(t)

	bot := f.bot(t, true)

	assert.NotNil(t, bot)
	assert.Equal(t, f.repos, bot.repos)
	assert.Equal(t, f.status, bot.status)
}

func TestRun_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	repos := []models.Repository{
		{Name: "repo1", FullName: "org/repo1"},
		{Name: "archived", FullName: "org/archived", Archived: true},
		{Name: "repo2", FullName: "org/repo2"},
	}
	pr1 := models.PullRequest{Number: 1, HeadSHA: "sha1"}
	pr2 := models.PullRequest{Number: 2, HeadSHA: "sha2"}
	event1 := models.PushEvent{DiffContent: "diff --git a/a b/a\n", SHA: "sha1"}
	event2 := models.PushEvent{DiffContent: "diff --git a/b b/b\n", SHA: "sha2"}
	allowed := verdict(t, models.VerdictAllow)
	blocked := verdict(t, models.VerdictBlock)

	f.repos.EXPECT().ListAll(mock.Anything).Once().Return(repos, nil)
	f.repos.EXPECT().ListOpenPullRequests(mock.Anything, repos[0]).Once().Return([]models.PullRequest{pr1}, nil)
	f.repos.EXPECT().ListOpenPullRequests(mock.Anything, repos[2]).Once().Return([]models.PullRequest{pr2}, nil)

	f.diffs.EXPECT().FromPullRequest(mock.Anything, repos[0], pr1).Once().Return(event1, nil)
	f.diffs.EXPECT().FromPullRequest(mock.Anything, repos[2], pr2).Once().Return(event2, nil)

	f.gate.EXPECT().Evaluate(mock.Anything, event1).Once().Return(allowed)
	f.gate.EXPECT().Evaluate(mock.Anything, event2).Once().Return(blocked)

	f.status.EXPECT().Publish(mock.Anything, repos[0], "sha1", allowed).Once().Return(nil)
	f.status.EXPECT().Publish(mock.Anything, repos[2], "sha2", blocked).Once().Return(nil)

	results, err := f.bot(t, true).Run(ctx)

	assert.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "repo1", results[0].Repository.Name)
	assert.Equal(t, models.VerdictAllow, results[0].Action.Verdict())
	assert.True(t, results[0].Published)
	assert.Equal(t, "repo2", results[1].Repository.Name)
	assert.Equal(t, models.VerdictBlock, results[1].Action.Verdict())
	assert.True(t, results[1].Published)
}

func TestRun_WithoutPublishing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	repo := models.Repository{Name: "repo1"}
	pr := models.PullRequest{Number: 1, HeadSHA: "sha1"}
	event := models.PushEvent{DiffContent: "diff --git a/a b/a\n"}

	f.repos.EXPECT().ListAll(mock.Anything).Once().Return([]models.Repository{repo}, nil)
	f.repos.EXPECT().ListOpenPullRequests(mock.Anything, repo).Once().Return([]models.PullRequest{pr}, nil)
	f.diffs.EXPECT().FromPullRequest(mock.Anything, repo, pr).Once().Return(event, nil)
	f.gate.EXPECT().Evaluate(mock.Anything, event).Once().Return(verdict(t, models.VerdictAllow))

	results, err := f.bot(t, false).Run(ctx)

	assert.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Published)
}

func TestRun_ListAllError(t *testing.T) {
	f := newFixture(t)

	f.repos.EXPECT().ListAll(mock.Anything).Once().Return(nil, errors.New("API error"))

	results, err := f.bot(t, true).Run(context.Background())

	assert.Error(t, err)
	assert.Nil(t, results)
}

func TestRun_FailuresDoNotAbortSweep(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	repos := []models.Repository{{Name: "broken"}, {Name: "repo2"}}
	badPR := models.PullRequest{Number: 1, HeadSHA: "sha1"}
	goodPR := models.PullRequest{Number: 2, HeadSHA: "sha2"}
	event := models.PushEvent{DiffContent: "diff --git a/b b/b\n"}
	blocked := verdict(t, models.VerdictBlock)

	f.repos.EXPECT().ListAll(mock.Anything).Once().Return(repos, nil)
	f.repos.EXPECT().ListOpenPullRequests(mock.Anything, repos[0]).Once().Return(nil, errors.New("forbidden"))
	f.repos.EXPECT().ListOpenPullRequests(mock.Anything, repos[1]).Once().Return([]models.PullRequest{badPR, goodPR}, nil)

	f.diffs.EXPECT().FromPullRequest(mock.Anything, repos[1], badPR).Once().Return(models.PushEvent{}, errors.New("diff too large"))
	f.diffs.EXPECT().FromPullRequest(mock.Anything, repos[1], goodPR).Once().Return(event, nil)
	f.gate.EXPECT().Evaluate(mock.Anything, event).Once().Return(blocked)
	f.status.EXPECT().Publish(mock.Anything, repos[1], "sha2", blocked).Once().Return(errors.New("API error"))

	results, err := f.bot(t, true).Run(ctx)

	assert.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].PullRequest.Number)
	assert.False(t, results[0].Published)
}

func TestRun_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := newFixture(t)

	f.repos.EXPECT().ListAll(mock.Anything).Once().Return([]models.Repository{{Name: "repo1"}}, nil)

	results, err := f.bot(t, true).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
