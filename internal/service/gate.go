package service

import (
	"context"

	"github.com/tracker-tv/push-policy-gate/internal/config"
	"github.com/tracker-tv/push-policy-gate/internal/diff"
	"github.com/tracker-tv/push-policy-gate/internal/inspector"
	"github.com/tracker-tv/push-policy-gate/internal/pipeline"
	"github.com/tracker-tv/push-policy-gate/models"
	"go.uber.org/zap"
)

type GateService interface {
	Evaluate(ctx context.Context, event models.PushEvent) *models.Action
	Inspectors() []string
}

type gateService struct {
	log        *zap.SugaredLogger
	pipeline   *pipeline.Pipeline
	inspectors []inspector.Inspector
}

func NewGateService(log *zap.SugaredLogger, p *pipeline.Pipeline, inspectors []inspector.Inspector) GateService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &gateService{log: log, pipeline: p, inspectors: inspectors}
}

// NewGateServiceFromConfig compiles the rule families and resolves the
// configured inspector list once, so a bad pattern or an unknown inspector
// name fails at startup.
func NewGateServiceFromConfig(log *zap.SugaredLogger, families []models.RuleFamily, cfg *config.Pipeline) (GateService, error) {
	if cfg == nil {
		cfg = config.DefaultPipeline()
	}

	reg, err := inspector.NewRegistry(families, inspector.RegistryOptions{ExcludePaths: cfg.ExcludePaths})
	if err != nil {
		return nil, err
	}

	selection := make([]inspector.Selection, 0, len(cfg.Inspectors))
	for _, s := range cfg.Inspectors {
		selection = append(selection, inspector.Selection{Name: s.Name, Enabled: s.IsEnabled()})
	}

	inspectors, err := reg.Select(selection)
	if err != nil {
		return nil, err
	}

	p := pipeline.New(log, pipeline.Options{
		Verbose:     cfg.Verbose,
		Timeout:     cfg.Timeout,
		Concurrency: cfg.Concurrency,
	})

	return NewGateService(log, p, inspectors), nil
}

func (s *gateService) Evaluate(ctx context.Context, event models.PushEvent) *models.Action {
	d := diff.Parse(event.DiffContent)
	action := models.NewAction(event, d)

	for _, w := range d.Warnings {
		s.log.Warnw("diff parsed with warnings", "action", action.ID, "repository", event.Repository, "warning", w)
	}

	s.log.Debugw("evaluating push",
		"action", action.ID,
		"repository", event.Repository,
		"ref", event.Ref,
		"files", len(d.Files),
	)

	return s.pipeline.Evaluate(ctx, action, s.inspectors)
}

func (s *gateService) Inspectors() []string {
	names := make([]string, 0, len(s.inspectors))
	for _, i := range s.inspectors {
		names = append(names, i.Name())
	}
	return names
}
