package service

import (
	"context"
	"fmt"

	"github.com/tracker-tv/push-policy-gate/internal/github"
	"github.com/tracker-tv/push-policy-gate/models"
)

type RepositoryService interface {
	ListAll(ctx context.Context) ([]models.Repository, error)
	ListOpenPullRequests(ctx context.Context, repo models.Repository) ([]models.PullRequest, error)
}

type repositoriesService struct {
	gh github.Client
}

func NewRepositoriesService(ghClient github.Client) RepositoryService {
	return &repositoriesService{gh: ghClient}
}

func (s *repositoriesService) ListAll(ctx context.Context) ([]models.Repository, error) {
	repos, err := s.gh.ListAllRepos(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Repository, 0, len(repos))

	for _, repo := range repos {
		if repo == nil {
			continue
		}

		result = append(result, models.Repository{
			Name:     repo.GetName(),
			FullName: repo.GetFullName(),
			Private:  repo.GetPrivate(),
			Archived: repo.GetArchived(),
		})
	}

	return result, nil
}

func (s *repositoriesService) ListOpenPullRequests(ctx context.Context, repo models.Repository) ([]models.PullRequest, error) {
	prs, err := s.gh.ListOpenPullRequests(ctx, repo.Name)
	if err != nil {
		return nil, fmt.Errorf("listing pull requests of %s: %w", repo.Name, err)
	}

	result := make([]models.PullRequest, 0, len(prs))

	for _, pr := range prs {
		if pr == nil {
			continue
		}

		result = append(result, models.PullRequest{
			Number:  pr.GetNumber(),
			Title:   pr.GetTitle(),
			HeadSHA: pr.GetHead().GetSHA(),
			HeadRef: pr.GetHead().GetRef(),
			HTMLURL: pr.GetHTMLURL(),
		})
	}

	return result, nil
}
