package models

import (
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

type Verdict string

const (
	VerdictUnknown Verdict = "unknown"
	VerdictAllow   Verdict = "allow"
	VerdictBlock   Verdict = "block"
)

var (
	ErrVerdictFinalized = errors.New("action verdict already finalized")
	ErrInvalidVerdict   = errors.New("invalid verdict")
)

// PushEvent is what the host proxy hands over for a push. Only DiffContent is
// interpreted; the rest is carried along for audit.
type PushEvent struct {
	DiffContent string      `json:"-" yaml:"-"`
	URL         string      `json:"url,omitempty" yaml:"url,omitempty"`
	Headers     http.Header `json:"headers,omitempty" yaml:"headers,omitempty"`
	Repository  string      `json:"repository,omitempty" yaml:"repository,omitempty"`
	Ref         string      `json:"ref,omitempty" yaml:"ref,omitempty"`
	SHA         string      `json:"sha,omitempty" yaml:"sha,omitempty"`
}

// Action is the unit of work for one push: the diff, the ordered audit trail
// of steps and the final verdict.
type Action struct {
	ID    string
	Event PushEvent
	Diff  *Diff

	mu      sync.Mutex
	steps   []Step
	verdict Verdict
}

func NewAction(event PushEvent, diff *Diff) *Action {
	if diff == nil {
		diff = &Diff{Raw: event.DiffContent}
	}
	return &Action{
		ID:      uuid.NewString(),
		Event:   event,
		Diff:    diff,
		verdict: VerdictUnknown,
	}
}

// AddStep appends a step. Steps cannot be added once the verdict is set.
func (a *Action) AddStep(step Step) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.verdict != VerdictUnknown {
		return ErrVerdictFinalized
	}
	a.steps = append(a.steps, step)
	return nil
}

func (a *Action) Steps() []Step {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]Step, len(a.steps))
	copy(out, a.steps)
	return out
}

// Finalize sets the verdict. It can only happen once.
func (a *Action) Finalize(v Verdict) error {
	if v != VerdictAllow && v != VerdictBlock {
		return ErrInvalidVerdict
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.verdict != VerdictUnknown {
		return ErrVerdictFinalized
	}
	a.verdict = v
	return nil
}

func (a *Action) Verdict() Verdict {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.verdict
}

func (a *Action) Blocked() bool {
	return a.Verdict() == VerdictBlock
}
