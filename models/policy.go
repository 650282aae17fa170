package models

type RuleTarget string

const (
	// RuleTargetContent matches regular expressions against the raw diff text.
	RuleTargetContent RuleTarget = "content"
	// RuleTargetPath matches globs against every file path of the diff.
	RuleTargetPath RuleTarget = "path"
	// RuleTargetRequiredPath fails when no file path of the diff matches any glob.
	RuleTargetRequiredPath RuleTarget = "required_path"
)

// RuleFamily is the versioned definition of one built-in inspector.
type RuleFamily struct {
	Name           string     `json:"name"`
	Category       Category   `json:"category"`
	Blocking       bool       `json:"blocking"`
	Target         RuleTarget `json:"target"`
	Redact         bool       `json:"redact,omitempty"`
	MissingMessage string     `json:"missing_message,omitempty"`
	Rules          []Rule     `json:"rules"`
}

// Rule is a single pattern of a family. Pattern is a regular expression for
// content families and a doublestar glob for path families.
type Rule struct {
	Pattern string `json:"pattern"`
	Message string `json:"message"`
}
