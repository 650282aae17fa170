// Package report renders evaluated actions for humans and machines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/tracker-tv/push-policy-gate/models"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown report format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

type fileView struct {
	Path    string `json:"path" yaml:"path"`
	New     bool   `json:"new,omitempty" yaml:"new,omitempty"`
	Added   int    `json:"added" yaml:"added"`
	Removed int    `json:"removed" yaml:"removed"`
}

type actionView struct {
	ID         string         `json:"id" yaml:"id"`
	Verdict    models.Verdict `json:"verdict" yaml:"verdict"`
	Repository string         `json:"repository,omitempty" yaml:"repository,omitempty"`
	Ref        string         `json:"ref,omitempty" yaml:"ref,omitempty"`
	SHA        string         `json:"sha,omitempty" yaml:"sha,omitempty"`
	URL        string         `json:"url,omitempty" yaml:"url,omitempty"`
	Files      []fileView     `json:"files" yaml:"files"`
	Warnings   []string       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Steps      []models.Step  `json:"steps" yaml:"steps"`
}

func view(a *models.Action) actionView {
	v := actionView{
		ID:         a.ID,
		Verdict:    a.Verdict(),
		Repository: a.Event.Repository,
		Ref:        a.Event.Ref,
		SHA:        a.Event.SHA,
		URL:        a.Event.URL,
		Files:      []fileView{},
		Steps:      a.Steps(),
	}
	if v.Steps == nil {
		v.Steps = []models.Step{}
	}

	if a.Diff != nil {
		v.Warnings = a.Diff.Warnings
		for _, f := range a.Diff.Files {
			v.Files = append(v.Files, fileView{
				Path:    f.Path,
				New:     f.IsAdded,
				Added:   len(f.Added),
				Removed: len(f.Removed),
			})
		}
	}
	return v
}

// Write renders the actions to w in the given format.
func Write(w io.Writer, format Format, actions ...*models.Action) error {
	views := make([]actionView, 0, len(actions))
	for _, a := range actions {
		views = append(views, view(a))
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return writeText(w, views)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func writeText(w io.Writer, views []actionView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i, v := range views {
		if i > 0 {
			fmt.Fprintln(tw)
		}

		fmt.Fprintf(tw, "Action:\t%s\n", v.ID)
		fmt.Fprintf(tw, "Verdict:\t%s\n", strings.ToUpper(string(v.Verdict)))
		if v.Repository != "" {
			fmt.Fprintf(tw, "Repository:\t%s\n", v.Repository)
		}
		if v.Ref != "" {
			fmt.Fprintf(tw, "Ref:\t%s\n", v.Ref)
		}
		if v.URL != "" {
			fmt.Fprintf(tw, "URL:\t%s\n", v.URL)
		}
		for _, warning := range v.Warnings {
			fmt.Fprintf(tw, "Warning:\t%s\n", warning)
		}

		if len(v.Files) > 0 {
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "FILE\tADDED\tREMOVED\t")
			for _, f := range v.Files {
				name := f.Path
				if name == "" {
					name = "(unknown)"
				}
				fmt.Fprintf(tw, "%s\t+%d\t-%d\t\n", name, f.Added, f.Removed)
			}
		}

		if len(v.Steps) > 0 {
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "INSPECTOR\tRESULT\tBLOCKING\tMESSAGE")
			for _, s := range v.Steps {
				writeStep(tw, s)
			}
		}
	}

	return tw.Flush()
}

func writeStep(tw *tabwriter.Writer, s models.Step) {
	result := "pass"
	if s.Failed() {
		result = "fail"
	}
	blocking := "no"
	if s.Blocking {
		blocking = "yes"
	}

	messages := s.Messages()
	if len(messages) == 0 {
		messages = []string{""}
	}

	for i, m := range messages {
		if i == 0 {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, result, blocking, m)
			continue
		}
		fmt.Fprintf(tw, "\t\t\t%s\n", m)
	}

	for _, f := range s.Findings {
		if len(f.Evidence) > 0 {
			fmt.Fprintf(tw, "\t\t\tevidence: %s\n", strings.Join(f.Evidence, ", "))
		}
	}
}
