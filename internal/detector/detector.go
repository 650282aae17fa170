// Package detector holds the pure pattern-matching functions behind every
// inspector. Matching is textual: content rules are case-sensitive regular
// expressions over the raw diff, path rules are doublestar globs over the
// lower-cased file paths.
package detector

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/tracker-tv/push-policy-gate/models"
)

const (
	maxEvidence     = 5
	pathPlaceholder = "{path}"
)

// Match is one rule that fired.
type Match struct {
	Pattern  string
	Message  string
	Evidence []string
}

type ContentRule struct {
	Pattern *regexp.Regexp
	Message string
}

type PathRule struct {
	Glob    string
	Message string
}

// Family is a compiled models.RuleFamily. It is immutable and safe for
// concurrent use.
type Family struct {
	def     models.RuleFamily
	content []ContentRule
	paths   []PathRule
	exclude *ignore.GitIgnore
}

type Option func(*Family)

// WithExclude skips matching paths in path and required_path families.
func WithExclude(gi *ignore.GitIgnore) Option {
	return func(f *Family) {
		f.exclude = gi
	}
}

func Compile(def models.RuleFamily, opts ...Option) (*Family, error) {
	f := &Family{def: def}

	switch def.Target {
	case models.RuleTargetContent:
		for _, r := range def.Rules {
			re, err := regexp.Compile(r.Pattern)
			if err != nil {
				return nil, fmt.Errorf("compiling %s pattern %q: %w", def.Name, r.Pattern, err)
			}
			f.content = append(f.content, ContentRule{Pattern: re, Message: r.Message})
		}
	case models.RuleTargetPath, models.RuleTargetRequiredPath:
		for _, r := range def.Rules {
			glob := strings.ToLower(r.Pattern)
			if !doublestar.ValidatePattern(glob) {
				return nil, fmt.Errorf("compiling %s glob %q: %w", def.Name, r.Pattern, doublestar.ErrBadPattern)
			}
			f.paths = append(f.paths, PathRule{Glob: glob, Message: r.Message})
		}
	default:
		return nil, fmt.Errorf("compiling %s: unknown target %q", def.Name, def.Target)
	}

	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *Family) Name() string { return f.def.Name }

func (f *Family) Category() models.Category { return f.def.Category }

func (f *Family) Blocking() bool { return f.def.Blocking }

// Detect runs every rule of the family against the diff.
func (f *Family) Detect(d *models.Diff) []Match {
	if d == nil {
		return nil
	}

	var matches []Match
	switch f.def.Target {
	case models.RuleTargetContent:
		matches = ScanContent(d.Raw, f.content)
	case models.RuleTargetPath:
		matches = ClassifyPaths(f.filterPaths(d.Paths()), f.paths)
	case models.RuleTargetRequiredPath:
		matches = RequirePaths(f.filterPaths(d.Paths()), f.paths, f.def.MissingMessage)
	}

	if f.def.Redact {
		for i := range matches {
			matches[i].Evidence = redactAll(matches[i].Evidence)
		}
	}
	return matches
}

func (f *Family) filterPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		if f.exclude != nil && f.exclude.MatchesPath(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ScanContent evaluates every rule independently; all firing rules are
// returned in table order.
func ScanContent(text string, rules []ContentRule) []Match {
	var matches []Match
	for _, r := range rules {
		found := r.Pattern.FindAllString(text, maxEvidence)
		if len(found) == 0 {
			continue
		}
		matches = append(matches, Match{
			Pattern:  r.Pattern.String(),
			Message:  r.Message,
			Evidence: found,
		})
	}
	return matches
}

// ClassifyPaths reports every (path, rule) pair that matches. Paths matching
// no rule contribute nothing.
func ClassifyPaths(paths []string, rules []PathRule) []Match {
	var matches []Match
	for _, p := range paths {
		lower := strings.ToLower(p)
		seen := make(map[string]struct{})

		for _, r := range rules {
			ok, err := doublestar.Match(r.Glob, lower)
			if err != nil || !ok {
				continue
			}
			msg := strings.ReplaceAll(r.Message, pathPlaceholder, p)
			if _, dup := seen[msg]; dup {
				continue
			}
			seen[msg] = struct{}{}
			matches = append(matches, Match{
				Pattern:  r.Glob,
				Message:  msg,
				Evidence: []string{p},
			})
		}
	}
	return matches
}

// RequirePaths fails with missing when paths is not empty and none of them
// matches any rule.
func RequirePaths(paths []string, rules []PathRule, missing string) []Match {
	if len(paths) == 0 {
		return nil
	}

	for _, p := range paths {
		lower := strings.ToLower(p)
		for _, r := range rules {
			if ok, err := doublestar.Match(r.Glob, lower); err == nil && ok {
				return nil
			}
		}
	}

	globs := make([]string, 0, len(rules))
	for _, r := range rules {
		globs = append(globs, r.Glob)
	}
	return []Match{{
		Pattern:  strings.Join(globs, ","),
		Message:  missing,
		Evidence: paths,
	}}
}

func redactAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Redact(v)
	}
	return out
}

// Redact keeps a short prefix of a secret so that audit readers can tell
// matches apart without seeing the value.
func Redact(s string) string {
	r := []rune(s)
	if len(r) <= 4 {
		return "****"
	}
	return string(r[:4]) + "****"
}
