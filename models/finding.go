package models

import "time"

type Category string

const (
	CategorySecret          Category = "secret"
	CategoryVulnerability   Category = "vulnerability"
	CategoryCompliance      Category = "compliance"
	CategoryCryptography    Category = "cryptography"
	CategoryLicense         Category = "license"
	CategoryMalicious       Category = "malicious"
	CategoryConfiguration   Category = "configuration"
	CategoryAIModel         Category = "ai_model"
	CategoryQuality         Category = "quality"
	CategoryDocumentation   Category = "documentation"
	CategoryDataFile        Category = "data_file"
	CategoryPatentableAsset Category = "patentable_asset"
)

var categories = map[Category]struct{}{
	CategorySecret:          {},
	CategoryVulnerability:   {},
	CategoryCompliance:      {},
	CategoryCryptography:    {},
	CategoryLicense:         {},
	CategoryMalicious:       {},
	CategoryConfiguration:   {},
	CategoryAIModel:         {},
	CategoryQuality:         {},
	CategoryDocumentation:   {},
	CategoryDataFile:        {},
	CategoryPatentableAsset: {},
}

func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

// Finding is the result of one inspector run.
type Finding struct {
	Category Category `json:"category" yaml:"category"`
	Passed   bool     `json:"passed" yaml:"passed"`
	Messages []string `json:"messages,omitempty" yaml:"messages,omitempty"`
	Evidence []string `json:"evidence,omitempty" yaml:"evidence,omitempty"`
}

// Step records one inspector invocation on an Action.
type Step struct {
	Name      string        `json:"name" yaml:"name"`
	Findings  []Finding     `json:"findings" yaml:"findings"`
	Timestamp time.Time     `json:"timestamp" yaml:"timestamp"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	Blocking  bool          `json:"blocking" yaml:"blocking"`
	Error     string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether any finding of the step did not pass.
func (s Step) Failed() bool {
	if s.Error != "" {
		return true
	}
	for _, f := range s.Findings {
		if !f.Passed {
			return true
		}
	}
	return false
}

// Messages flattens the messages of every finding in order.
func (s Step) Messages() []string {
	var out []string
	for _, f := range s.Findings {
		out = append(out, f.Messages...)
	}
	return out
}
