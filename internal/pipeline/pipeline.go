package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tracker-tv/push-policy-gate/internal/inspector"
	"github.com/tracker-tv/push-policy-gate/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInspectorFailure = errors.New("inspector failure")
	ErrTimeoutExceeded  = fmt.Errorf("%w: timeout exceeded", ErrInspectorFailure)
)

type Options struct {
	// Verbose attaches a Step for passing findings too.
	Verbose bool
	// Timeout bounds every single inspector call. Zero or less means
	// DefaultTimeout; the deadline cannot be switched off.
	Timeout time.Duration
	// Concurrency caps the number of inspectors running at once. Values
	// below one mean unlimited; one runs inspectors sequentially.
	Concurrency int
}

type Pipeline struct {
	log  *zap.SugaredLogger
	opts Options
	now  func() time.Time
}

const (
	DefaultTimeout = 5 * time.Second

	// settleWindow is how long the pipeline still waits for a result once
	// the inspector's ctx is done, so a finding returned alongside the
	// cancellation is not lost.
	settleWindow = 10 * time.Millisecond
)

func New(log *zap.SugaredLogger, opts Options) *Pipeline {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Pipeline{log: log, opts: opts, now: time.Now}
}

type outcome struct {
	finding models.Finding
	err     error
}

// Evaluate runs the inspectors against the action's diff, attaches Steps in
// the given order and sets the verdict. It never returns an error: inspector
// failures, panics and timeouts become failing Steps.
//
// When ctx is canceled, inspectors that have not started are skipped and the
// action is blocked, since the evaluation is incomplete.
func (p *Pipeline) Evaluate(ctx context.Context, action *models.Action, inspectors []inspector.Inspector) *models.Action {
	if v := action.Verdict(); v != models.VerdictUnknown {
		p.log.Warnw("action already evaluated", "action", action.ID, "verdict", v)
		return action
	}

	results := make([]*models.Step, len(inspectors))

	var g errgroup.Group
	if p.opts.Concurrency > 0 {
		g.SetLimit(p.opts.Concurrency)
	}

	for i, insp := range inspectors {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			step := p.run(ctx, insp, action.Diff)
			results[i] = &step
			return nil
		})
	}
	_ = g.Wait()

	blocked := false
	skipped := 0
	for i, step := range results {
		if step == nil {
			skipped++
			p.log.Warnw("inspector skipped", "action", action.ID, "inspector", inspectors[i].Name(), "reason", context.Cause(ctx))
			continue
		}

		failed := step.Failed()
		if failed && (step.Blocking || step.Error != "") {
			blocked = true
		}
		if !failed && !p.opts.Verbose {
			continue
		}
		if err := action.AddStep(*step); err != nil {
			p.log.Errorw("attaching step", "action", action.ID, "inspector", step.Name, "error", err)
		}
	}

	verdict := models.VerdictAllow
	if blocked || skipped > 0 {
		verdict = models.VerdictBlock
	}
	if err := action.Finalize(verdict); err != nil {
		p.log.Errorw("finalizing action", "action", action.ID, "error", err)
	}

	p.log.Infow("action evaluated",
		"action", action.ID,
		"verdict", action.Verdict(),
		"inspectors", len(inspectors),
		"steps", len(action.Steps()),
		"skipped", skipped,
	)
	return action
}

func (p *Pipeline) run(ctx context.Context, insp inspector.Inspector, diff *models.Diff) models.Step {
	start := p.now()
	step := models.Step{
		Name:      insp.Name(),
		Timestamp: start,
		Blocking:  insp.Blocking(),
	}

	runCtx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		f, err := insp.Inspect(runCtx, diff)
		done <- outcome{finding: f, err: err}
	}()

	// An inspector that ignores ctx keeps running in its goroutine; the
	// pipeline stops waiting for it shortly after the deadline.
	var out outcome
	select {
	case out = <-done:
	case <-runCtx.Done():
		settle := time.NewTimer(settleWindow)
		select {
		case out = <-done:
		case <-settle.C:
			out = outcome{err: runCtx.Err()}
		}
		settle.Stop()
	}
	step.Duration = p.now().Sub(start)

	if out.err != nil {
		reason, err := p.failure(ctx, out.err)
		step.Error = err.Error()
		step.Findings = []models.Finding{{
			Category: insp.Category(),
			Passed:   false,
			Messages: []string{fmt.Sprintf("inspector %s failed: %s", insp.Name(), reason)},
		}}
		p.log.Warnw("inspector failed", "inspector", insp.Name(), "error", err, "duration", step.Duration)
		return step
	}

	finding := out.finding
	if finding.Category == "" {
		finding.Category = insp.Category()
	}
	if finding.Passed {
		finding.Messages = nil
	}
	step.Findings = []models.Finding{finding}

	p.log.Debugw("inspector finished", "inspector", insp.Name(), "passed", finding.Passed, "duration", step.Duration)
	return step
}

// failure classifies an inspector error and returns the human readable
// reason alongside the wrapped error. Only the per-inspector deadline counts
// as a timeout; a deadline on the caller's ctx is reported as is.
func (p *Pipeline) failure(ctx context.Context, err error) (string, error) {
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return fmt.Sprintf("timeout exceeded after %s", p.opts.Timeout),
			fmt.Errorf("%w after %s", ErrTimeoutExceeded, p.opts.Timeout)
	}
	return err.Error(), fmt.Errorf("%w: %w", ErrInspectorFailure, err)
}
