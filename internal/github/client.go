package github

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/push-policy-gate/models"
)

type RepositoriesAdapter interface {
	ListByOrg(ctx context.Context, org string, opts *gh.RepositoryListByOrgOptions) ([]*gh.Repository, *gh.Response, error)
	CreateStatus(ctx context.Context, owner, repo, ref string, status gh.RepoStatus) (*gh.RepoStatus, *gh.Response, error)
}

type PullRequestsAdapter interface {
	List(ctx context.Context, owner, repo string, opts *gh.PullRequestListOptions) ([]*gh.PullRequest, *gh.Response, error)
	GetRaw(ctx context.Context, owner, repo string, number int, opts gh.RawOptions) (string, *gh.Response, error)
}

type Client interface {
	ListAllRepos(ctx context.Context) ([]*gh.Repository, error)
	ListOpenPullRequests(ctx context.Context, repo string) ([]*gh.PullRequest, error)
	GetPullRequestDiff(ctx context.Context, repo string, number int) (string, error)
	CreateStatus(ctx context.Context, repo, sha string, status models.CommitStatus) error
}

type client struct {
	repositories RepositoriesAdapter
	pullRequests PullRequestsAdapter
	org          string
}

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

func New(token, org string) Client {
	return NewFromGitHub(newGitHub(token), org)
}

// NewFromGitHub wraps an existing go-github client, e.g. one pointed at a
// GitHub Enterprise base URL.
func NewFromGitHub(g *gh.Client, org string) Client {
	return &client{
		repositories: g.Repositories,
		pullRequests: g.PullRequests,
		org:          org,
	}
}

func newGitHub(token string) *gh.Client {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}
	return gh.NewClient(httpClient)
}
