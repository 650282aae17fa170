package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	github "github.com/tracker-tv/push-policy-gate/internal/github/mocks"
	"github.com/tracker-tv/push-policy-gate/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	g := gh.NewClient(nil)
	base, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	g.BaseURL = base

	return NewFromGitHub(g, "org-name")
}

func TestCreateStatus_Success(t *testing.T) {
	var got models.CommitStatus

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/repos/org-name/repo-name/statuses/abc123", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	})

	err := c.CreateStatus(context.Background(), "repo-name", "abc123", models.CommitStatus{
		State:       models.CommitStateFailure,
		Context:     "push-policy-gate",
		Description: "blocked",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.CommitStateFailure, got.State)
	assert.Equal(t, "push-policy-gate", got.Context)
	assert.Equal(t, "blocked", got.Description)
}

func TestCreateStatus_Error(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"Validation Failed"}`))
	})

	err := c.CreateStatus(context.Background(), "repo-name", "abc123", models.CommitStatus{
		State:   models.CommitStateSuccess,
		Context: "push-policy-gate",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Validation Failed")
}

func TestCreateStatus_MapsRepoStatus(t *testing.T) {
	ctx := context.Background()

	reposSvc := github.NewMockRepositoriesAdapter(t)

	reposSvc.
		EXPECT().
		CreateStatus(mock.Anything, "org-name", "repo-name", "abc123",
			mock.MatchedBy(func(s gh.RepoStatus) bool {
				return s.GetState() == "failure" &&
					s.GetContext() == "push-policy-gate" &&
					s.GetDescription() == "blocked" &&
					s.GetTargetURL() == "https://ci.example.com/runs/1"
			}),
		).
		Once().
		Return(&gh.RepoStatus{}, &gh.Response{}, nil)

	c := &client{repositories: reposSvc, org: "org-name"}

	err := c.CreateStatus(ctx, "repo-name", "abc123", models.CommitStatus{
		State:       models.CommitStateFailure,
		Context:     "push-policy-gate",
		Description: "blocked",
		TargetURL:   "https://ci.example.com/runs/1",
	})

	assert.NoError(t, err)
}

func TestCreateStatus_OmitsEmptyOptionalFields(t *testing.T) {
	status := toRepoStatus(models.CommitStatus{
		State:   models.CommitStateSuccess,
		Context: "push-policy-gate",
	})

	assert.Equal(t, "success", status.GetState())
	assert.Equal(t, "push-policy-gate", status.GetContext())
	assert.Nil(t, status.Description)
	assert.Nil(t, status.TargetURL)
}

func TestCreateStatus_RetriesRateLimit(t *testing.T) {
	ctx := context.Background()

	reposSvc := github.NewMockRepositoriesAdapter(t)

	rateLimited := &gh.RateLimitError{
		Rate: gh.Rate{Reset: gh.Timestamp{Time: time.Now().Add(10 * time.Millisecond)}},
	}

	reposSvc.
		EXPECT().
		CreateStatus(mock.Anything, "org-name", "repo-name", "abc123", mock.Anything).
		Once().
		Return(nil, &gh.Response{}, rateLimited)

	reposSvc.
		EXPECT().
		CreateStatus(mock.Anything, "org-name", "repo-name", "abc123", mock.Anything).
		Once().
		Return(&gh.RepoStatus{}, &gh.Response{}, nil)

	c := &client{repositories: reposSvc, org: "org-name"}

	err := c.CreateStatus(ctx, "repo-name", "abc123", models.CommitStatus{
		State:   models.CommitStateSuccess,
		Context: "push-policy-gate",
	})

	assert.NoError(t, err)
}
