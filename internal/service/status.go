package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tracker-tv/push-policy-gate/internal/github"
	"github.com/tracker-tv/push-policy-gate/models"
)

const (
	StatusContext = "push-policy-gate"

	maxDescriptionLength = 140
)

var ErrNotEvaluated = errors.New("action has no verdict")

type StatusService interface {
	Publish(ctx context.Context, repo models.Repository, sha string, action *models.Action) error
}

type statusService struct {
	gh github.Client
}

func NewStatusService(ghClient github.Client) StatusService {
	return &statusService{gh: ghClient}
}

func (s *statusService) Publish(ctx context.Context, repo models.Repository, sha string, action *models.Action) error {
	status, err := CommitStatusFor(action)
	if err != nil {
		return err
	}
	status.TargetURL = action.Event.URL

	if err := s.gh.CreateStatus(ctx, repo.Name, sha, status); err != nil {
		return fmt.Errorf("publishing status on %s@%s: %w", repo.Name, sha, err)
	}
	return nil
}

// CommitStatusFor maps a finalized action to the commit status reported
// for it.
func CommitStatusFor(action *models.Action) (models.CommitStatus, error) {
	switch action.Verdict() {
	case models.VerdictAllow:
		return models.CommitStatus{
			State:       models.CommitStateSuccess,
			Context:     StatusContext,
			Description: "No blocking policy findings",
		}, nil
	case models.VerdictBlock:
		return models.CommitStatus{
			State:       models.CommitStateFailure,
			Context:     StatusContext,
			Description: truncate(blockedDescription(action.Steps()), maxDescriptionLength),
		}, nil
	default:
		return models.CommitStatus{}, ErrNotEvaluated
	}
}

func blockedDescription(steps []models.Step) string {
	var names []string
	for _, step := range steps {
		if step.Failed() && (step.Blocking || step.Error != "") {
			names = append(names, step.Name)
		}
	}

	if len(names) == 0 {
		return "Blocked: evaluation incomplete"
	}
	return "Blocked by " + strings.Join(names, ", ")
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
