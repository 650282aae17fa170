package service

import (
	"context"
	"fmt"
	"io"

	"github.com/tracker-tv/push-policy-gate/internal/git"
	"github.com/tracker-tv/push-policy-gate/internal/github"
	"github.com/tracker-tv/push-policy-gate/models"
)

// DiffService turns the supported diff sources into push events.
type DiffService interface {
	FromReader(r io.Reader, source string) (models.PushEvent, error)
	FromLocal(ctx context.Context, repoPath, base, head string) (models.PushEvent, error)
	FromPullRequest(ctx context.Context, repo models.Repository, pr models.PullRequest) (models.PushEvent, error)
}

type localDiffFunc func(ctx context.Context, repoPath, base, head string) (string, error)

type diffService struct {
	gh        github.Client
	localDiff localDiffFunc
}

// NewDiffService returns a DiffService. ghClient may be nil when pull
// requests are not used.
func NewDiffService(ghClient github.Client) DiffService {
	return &diffService{gh: ghClient, localDiff: git.Diff}
}

func (s *diffService) FromReader(r io.Reader, source string) (models.PushEvent, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.PushEvent{}, fmt.Errorf("reading diff from %s: %w", source, err)
	}

	return models.PushEvent{
		DiffContent: string(data),
		Repository:  source,
	}, nil
}

func (s *diffService) FromLocal(ctx context.Context, repoPath, base, head string) (models.PushEvent, error) {
	raw, err := s.localDiff(ctx, repoPath, base, head)
	if err != nil {
		return models.PushEvent{}, fmt.Errorf("diffing %s: %w", repoPath, err)
	}

	if head == "" {
		head = "HEAD"
	}

	return models.PushEvent{
		DiffContent: raw,
		Repository:  repoPath,
		Ref:         head,
	}, nil
}

func (s *diffService) FromPullRequest(ctx context.Context, repo models.Repository, pr models.PullRequest) (models.PushEvent, error) {
	if s.gh == nil {
		return models.PushEvent{}, fmt.Errorf("fetching diff of %s#%d: no GitHub client configured", repo.Name, pr.Number)
	}

	raw, err := s.gh.GetPullRequestDiff(ctx, repo.Name, pr.Number)
	if err != nil {
		return models.PushEvent{}, fmt.Errorf("fetching diff of %s#%d: %w", repo.Name, pr.Number, err)
	}

	return models.PushEvent{
		DiffContent: raw,
		URL:         pr.HTMLURL,
		Repository:  repo.FullName,
		Ref:         pr.HeadRef,
		SHA:         pr.HeadSHA,
	}, nil
}
