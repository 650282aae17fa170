package inspector

import (
	"context"
	"errors"
	"fmt"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/tracker-tv/push-policy-gate/internal/detector"
	"github.com/tracker-tv/push-policy-gate/models"
)

var ErrUnknownInspector = errors.New("unknown inspector")

// Inspector is a named rule evaluated against a diff. Implementations must
// not keep state between calls and should return when ctx is done.
type Inspector interface {
	Name() string
	Category() models.Category
	// Blocking reports whether a failing Finding flips the verdict to Block.
	Blocking() bool
	Inspect(ctx context.Context, diff *models.Diff) (models.Finding, error)
}

type ruleInspector struct {
	family *detector.Family
}

// FromFamily wraps a compiled rule family.
func FromFamily(f *detector.Family) Inspector {
	return &ruleInspector{family: f}
}

func (r *ruleInspector) Name() string { return r.family.Name() }

func (r *ruleInspector) Category() models.Category { return r.family.Category() }

func (r *ruleInspector) Blocking() bool { return r.family.Blocking() }

func (r *ruleInspector) Inspect(ctx context.Context, diff *models.Diff) (models.Finding, error) {
	if err := ctx.Err(); err != nil {
		return models.Finding{}, err
	}

	finding := models.Finding{Category: r.family.Category(), Passed: true}
	for _, m := range r.family.Detect(diff) {
		finding.Passed = false
		finding.Messages = append(finding.Messages, m.Message)
		finding.Evidence = append(finding.Evidence, m.Evidence...)
	}
	return finding, nil
}

// Func adapts a plain function to the Inspector interface.
type Func struct {
	ID       string
	Cat      models.Category
	Blocks   bool
	InspectF func(ctx context.Context, diff *models.Diff) (models.Finding, error)
}

func (f Func) Name() string { return f.ID }

func (f Func) Category() models.Category { return f.Cat }

func (f Func) Blocking() bool { return f.Blocks }

func (f Func) Inspect(ctx context.Context, diff *models.Diff) (models.Finding, error) {
	if f.InspectF == nil {
		return models.Finding{}, fmt.Errorf("inspector %s has no function", f.ID)
	}
	return f.InspectF(ctx, diff)
}

// Registry holds the inspectors known at startup, in table order.
type Registry struct {
	order []string
	byKey map[string]Inspector
}

type RegistryOptions struct {
	// ExcludePaths are gitignore-style lines applied to path-based families.
	ExcludePaths []string
}

func NewRegistry(families []models.RuleFamily, opts RegistryOptions) (*Registry, error) {
	var familyOpts []detector.Option
	if len(opts.ExcludePaths) > 0 {
		familyOpts = append(familyOpts, detector.WithExclude(ignore.CompileIgnoreLines(opts.ExcludePaths...)))
	}

	reg := &Registry{byKey: make(map[string]Inspector, len(families))}
	for _, def := range families {
		f, err := detector.Compile(def, familyOpts...)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(FromFamily(f)); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func (r *Registry) Register(i Inspector) error {
	if _, dup := r.byKey[i.Name()]; dup {
		return fmt.Errorf("inspector %s already registered", i.Name())
	}
	r.order = append(r.order, i.Name())
	r.byKey[i.Name()] = i
	return nil
}

func (r *Registry) Get(name string) (Inspector, bool) {
	i, ok := r.byKey[name]
	return i, ok
}

// All returns every registered inspector in registration order.
func (r *Registry) All() []Inspector {
	out := make([]Inspector, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byKey[name])
	}
	return out
}

// Selection is one entry of the configured inspector list.
type Selection struct {
	Name    string
	Enabled bool
}

// Select resolves the configured order. Disabled entries are dropped; an
// empty selection means every registered inspector in registration order.
func (r *Registry) Select(selection []Selection) ([]Inspector, error) {
	if len(selection) == 0 {
		return r.All(), nil
	}

	seen := make(map[string]struct{}, len(selection))
	out := make([]Inspector, 0, len(selection))
	for _, s := range selection {
		i, ok := r.byKey[s.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownInspector, s.Name)
		}
		if _, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("inspector %s listed twice", s.Name)
		}
		seen[s.Name] = struct{}{}

		if s.Enabled {
			out = append(out, i)
		}
	}
	return out, nil
}
