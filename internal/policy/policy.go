package policy

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tracker-tv/push-policy-gate/models"
)

//go:embed rules/*.json
var embeddedRules embed.FS

var ErrInvalidFamily = errors.New("invalid rule family")

// Default returns the built-in rule families in their canonical order.
func Default() ([]models.RuleFamily, error) {
	data, err := embeddedRules.ReadFile("rules/default.json")
	if err != nil {
		return nil, err
	}
	return FromJSON(data)
}

func FromJSON(data []byte) ([]models.RuleFamily, error) {
	var families []models.RuleFamily
	if err := json.Unmarshal(data, &families); err != nil {
		return nil, err
	}
	if err := Validate(families); err != nil {
		return nil, err
	}
	return families, nil
}

// Validate checks the structure of the families. Pattern syntax is checked
// when the families are compiled.
func Validate(families []models.RuleFamily) error {
	seen := make(map[string]struct{}, len(families))

	for i, f := range families {
		if f.Name == "" {
			return fmt.Errorf("%w: family %d has no name", ErrInvalidFamily, i)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("%w: duplicate family %s", ErrInvalidFamily, f.Name)
		}
		seen[f.Name] = struct{}{}

		if !f.Category.Valid() {
			return fmt.Errorf("%w: %s has unknown category %q", ErrInvalidFamily, f.Name, f.Category)
		}
		if len(f.Rules) == 0 {
			return fmt.Errorf("%w: %s has no rules", ErrInvalidFamily, f.Name)
		}

		switch f.Target {
		case models.RuleTargetContent, models.RuleTargetPath:
			for j, r := range f.Rules {
				if r.Pattern == "" || r.Message == "" {
					return fmt.Errorf("%w: %s rule %d needs a pattern and a message", ErrInvalidFamily, f.Name, j)
				}
			}
		case models.RuleTargetRequiredPath:
			if f.MissingMessage == "" {
				return fmt.Errorf("%w: %s needs a missing_message", ErrInvalidFamily, f.Name)
			}
			for j, r := range f.Rules {
				if r.Pattern == "" {
					return fmt.Errorf("%w: %s rule %d needs a pattern", ErrInvalidFamily, f.Name, j)
				}
			}
		default:
			return fmt.Errorf("%w: %s has unknown target %q", ErrInvalidFamily, f.Name, f.Target)
		}
	}

	return nil
}
