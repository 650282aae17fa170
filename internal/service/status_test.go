package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	githubMocks "github.com/tracker-tv/push-policy-gate/internal/github/mocks"
	"github.com/tracker-tv/push-policy-gate/models"
)

func finalized(t *testing.T, v models.Verdict, steps ...models.Step) *models.Action {
	t.Helper()

	a := models.NewAction(models.PushEvent{URL: "https://github.com/org/app/pull/1"}, nil)
	for _, s := range steps {
		require.NoError(t, a.AddStep(s))
	}
	require.NoError(t, a.Finalize(v))
	return a
}

func failed(name string, blocking bool) models.Step {
	return models.Step{
		Name:     name,
		Blocking: blocking,
		Findings: []models.Finding{{Passed: false, Messages: []string{name + " failed"}}},
	}
}

func TestPublish_Allow(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		CreateStatus(mock.Anything, "app", "abc123", models.CommitStatus{
			State:       models.CommitStateSuccess,
			Context:     StatusContext,
			Description: "No blocking policy findings",
			TargetURL:   "https://github.com/org/app/pull/1",
		}).
		Once().
		Return(nil)

	svc := NewStatusService(mockClient)

	err := svc.Publish(context.Background(), models.Repository{Name: "app"}, "abc123", finalized(t, models.VerdictAllow))

	assert.NoError(t, err)
}

func TestPublish_BlockListsBlockingSteps(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		CreateStatus(mock.Anything, "app", "abc123",
			mock.MatchedBy(func(s models.CommitStatus) bool {
				return s.State == models.CommitStateFailure &&
					s.Description == "Blocked by SensitiveDataDetection, LicenseCompliance"
			}),
		).
		Once().
		Return(nil)

	svc := NewStatusService(mockClient)
	action := finalized(t, models.VerdictBlock,
		failed("SensitiveDataDetection", true),
		failed("CodeQuality", false),
		failed("LicenseCompliance", true),
	)

	err := svc.Publish(context.Background(), models.Repository{Name: "app"}, "abc123", action)

	assert.NoError(t, err)
}

func TestPublish_NotEvaluated(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	svc := NewStatusService(mockClient)

	err := svc.Publish(context.Background(), models.Repository{Name: "app"}, "abc123", models.NewAction(models.PushEvent{}, nil))

	assert.ErrorIs(t, err, ErrNotEvaluated)
}

func TestPublish_ClientError(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		CreateStatus(mock.Anything, "app", "abc123", mock.Anything).
		Once().
		Return(errors.New("API error"))

	svc := NewStatusService(mockClient)

	err := svc.Publish(context.Background(), models.Repository{Name: "app"}, "abc123", finalized(t, models.VerdictAllow))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "publishing status on app@abc123")
}

func TestCommitStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		action func(t *testing.T) *models.Action
		want   string
	}{
		{
			name: "inspector failure on advisory step",
			action: func(t *testing.T) *models.Action {
				s := failed("DocumentationAudit", false)
				s.Error = "inspector failure: boom"
				return finalized(t, models.VerdictBlock, s)
			},
			want: "Blocked by DocumentationAudit",
		},
		{
			name: "incomplete evaluation",
			action: func(t *testing.T) *models.Action {
				return finalized(t, models.VerdictBlock)
			},
			want: "Blocked: evaluation incomplete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := CommitStatusFor(tt.action(t))

			require.NoError(t, err)
			assert.Equal(t, models.CommitStateFailure, status.State)
			assert.Equal(t, tt.want, status.Description)
		})
	}
}

func TestCommitStatusFor_TruncatesDescription(t *testing.T) {
	var steps []models.Step
	for i := 0; i < 20; i++ {
		steps = append(steps, failed(strings.Repeat("X", 10)+string(rune('A'+i)), true))
	}

	status, err := CommitStatusFor(finalized(t, models.VerdictBlock, steps...))

	require.NoError(t, err)
	assert.Equal(t, maxDescriptionLength, utf8.RuneCountInString(status.Description))
	assert.True(t, strings.HasSuffix(status.Description, "..."))
}
