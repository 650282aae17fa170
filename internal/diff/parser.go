package diff

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/tracker-tv/push-policy-gate/models"
)

const headerPrefix = "diff --git"

// Parse turns a unified diff into a models.Diff. It never fails: malformed
// headers produce a file with an empty path and a warning.
func Parse(raw string) *models.Diff {
	d := &models.Diff{Raw: raw}
	var current *models.DiffFile
	inHunk := false

	lines := strings.Split(raw, "\n")
	for n, line := range lines {
		line = strings.TrimSuffix(line, "\r")

		if strings.HasPrefix(line, headerPrefix) {
			if current != nil {
				d.Files = append(d.Files, *current)
			}
			p, ok := parseFileName(line)
			if !ok {
				d.Warnings = append(d.Warnings, fmt.Sprintf("line %d: malformed diff header %q", n+1, line))
			}
			current = &models.DiffFile{Path: p, Extension: extension(p)}
			inHunk = false
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case strings.HasPrefix(line, "@@"):
			inHunk = true
		case !inHunk:
			if strings.HasPrefix(line, "new file mode") || line == "--- /dev/null" {
				current.IsAdded = true
			}
			if p, ok := parseTargetName(line); ok {
				current.Path, current.Extension = p, extension(p)
			}
		case strings.HasPrefix(line, "+"):
			current.Added = append(current.Added, line[1:])
		case strings.HasPrefix(line, "-"):
			current.Removed = append(current.Removed, line[1:])
		}
	}

	if current != nil {
		d.Files = append(d.Files, *current)
	}

	return d
}

// parseFileName extracts the post-image path from a "diff --git" header.
// Git quotes paths holding special characters; unquoted paths may contain
// spaces, so the split happens on the last " b/".
func parseFileName(line string) (string, bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, headerPrefix))

	if strings.HasPrefix(rest, `"`) {
		first, err := strconv.QuotedPrefix(rest)
		if err != nil {
			return "", false
		}
		rest = strings.TrimSpace(rest[len(first):])
		if rest == "" {
			return "", false
		}
		return unquotePath(rest)
	}

	if i := strings.LastIndex(rest, " b/"); i >= 0 {
		return rest[i+len(" b/"):], true
	}
	if i := strings.LastIndex(rest, ` "b/`); i >= 0 {
		return unquotePath(rest[i+1:])
	}

	parts := strings.Fields(rest)
	if len(parts) < 2 {
		return "", false
	}
	return strings.TrimPrefix(parts[len(parts)-1], "b/"), true
}

// parseTargetName reads the path from a "+++ b/..." line. It is preferred
// over the header because it carries a single path and cannot be ambiguous.
func parseTargetName(line string) (string, bool) {
	if !strings.HasPrefix(line, "+++ ") {
		return "", false
	}
	name := strings.TrimSuffix(strings.TrimPrefix(line, "+++ "), "\t")
	if name == "/dev/null" {
		return "", false
	}
	return unquotePath(name)
}

func unquotePath(s string) (string, bool) {
	if strings.HasPrefix(s, `"`) {
		u, err := strconv.Unquote(s)
		if err != nil {
			return "", false
		}
		s = u
	}
	if !strings.HasPrefix(s, "b/") {
		return "", false
	}
	return strings.TrimPrefix(s, "b/"), true
}

func extension(p string) string {
	if p == "" {
		return ""
	}
	return strings.ToLower(path.Ext(p))
}
