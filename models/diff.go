package models

// DiffFile is one file section of a unified diff.
type DiffFile struct {
	Path      string   `json:"path" yaml:"path"`
	Extension string   `json:"extension" yaml:"extension"`
	IsAdded   bool     `json:"is_added" yaml:"is_added"`
	Added     []string `json:"-" yaml:"-"`
	Removed   []string `json:"-" yaml:"-"`
}

// Diff is the normalized form of a push diff. It is built once per Action
// and never modified afterwards.
type Diff struct {
	Files    []DiffFile `json:"files" yaml:"files"`
	Raw      string     `json:"-" yaml:"-"`
	Warnings []string   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Paths returns the file paths in diff order.
func (d *Diff) Paths() []string {
	if d == nil {
		return nil
	}
	paths := make([]string, 0, len(d.Files))
	for _, f := range d.Files {
		paths = append(paths, f.Path)
	}
	return paths
}
