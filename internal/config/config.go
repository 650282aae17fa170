package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/tracker-tv/push-policy-gate/internal/pipeline"
	"gopkg.in/yaml.v3"
)

type Config struct {
	GithubPAT  string `env:"GATE_GITHUB_PAT"`
	GithubOrg  string `env:"GATE_GITHUB_ORG"`
	ConfigFile string `env:"GATE_CONFIG_FILE"`
	LogLevel   string `env:"GATE_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat  string `env:"GATE_LOG_FORMAT" envDefault:"console" validate:"oneof=console json"`
}

// Pipeline is the tunable surface of the gate, read from a YAML file.
type Pipeline struct {
	Verbose      bool                `yaml:"verbose"`
	Timeout      time.Duration       `yaml:"timeout" validate:"gt=0"`
	Concurrency  int                 `yaml:"concurrency" validate:"gte=0"`
	ExcludePaths []string            `yaml:"exclude_paths"`
	Inspectors   []InspectorSettings `yaml:"inspectors" validate:"dive"`
}

type InspectorSettings struct {
	Name    string `yaml:"name" validate:"required"`
	Enabled *bool  `yaml:"enabled"`
}

// IsEnabled treats a missing enabled flag as true.
func (s InspectorSettings) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

const (
	DefaultTimeout     = pipeline.DefaultTimeout
	DefaultConcurrency = 4
)

var validate = validator.New()

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	return &cfg, nil
}

func DefaultPipeline() *Pipeline {
	return &Pipeline{
		Timeout:     DefaultTimeout,
		Concurrency: DefaultConcurrency,
	}
}

// LoadPipeline reads the pipeline file at path. An empty path or a missing
// file yields the defaults.
func LoadPipeline(path string) (*Pipeline, error) {
	if path == "" {
		return DefaultPipeline(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultPipeline(), nil
		}
		return nil, fmt.Errorf("reading pipeline config %s: %w", path, err)
	}

	p, err := ParsePipeline(data)
	if err != nil {
		return nil, fmt.Errorf("parsing pipeline config %s: %w", path, err)
	}
	return p, nil
}

func ParsePipeline(data []byte) (*Pipeline, error) {
	p := DefaultPipeline()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, err
	}
	if err := validate.Struct(p); err != nil {
		return nil, err
	}
	return p, nil
}
