package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/carepath-ai/readmission/pkg/risk"
	"gopkg.in/yaml.v3"
)

// DefaultVersionName labels the built-in coefficient set used when no model
// configuration file is supplied.
const DefaultVersionName = "baseline-2024"

type versionConfig struct {
	Name    string  `yaml:"name"`
	Shape   float64 `yaml:"shape"`
	Scale   float64 `yaml:"scale"`
	Weights struct {
		Age            float64 `yaml:"age"`
		Comorbidity    float64 `yaml:"comorbidity"`
		PriorAdmission float64 `yaml:"prior_admission"`
		Diabetes       float64 `yaml:"diabetes"`
		CHF            float64 `yaml:"chf"`
		COPD           float64 `yaml:"copd"`
		Socioeconomic  float64 `yaml:"socioeconomic"`
	} `yaml:"weights"`
}

type fileConfig struct {
	DefaultVersion string          `yaml:"default_version"`
	Versions       []versionConfig `yaml:"versions"`
}

// Registry holds one immutable engine per registered coefficient version.
// It is populated once at startup and read-only afterwards, so concurrent
// lookups need no locking.
type Registry struct {
	engines        map[string]*risk.Engine
	defaultVersion string
}

// Load reads coefficient versions from a YAML file. An empty path yields a
// registry holding only the built-in default model.
func Load(path string) (*Registry, error) {
	if path == "" {
		engine, err := risk.NewEngine(risk.DefaultCoefficients())
		if err != nil {
			return nil, err
		}
		return &Registry{
			engines:        map[string]*risk.Engine{DefaultVersionName: engine},
			defaultVersion: DefaultVersionName,
		}, nil
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read model config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse model config: %w", err)
	}
	if len(cfg.Versions) == 0 {
		return nil, errors.New("model config declares no versions")
	}

	engines := make(map[string]*risk.Engine, len(cfg.Versions))
	for _, v := range cfg.Versions {
		if v.Name == "" {
			return nil, errors.New("model version missing name")
		}
		if _, exists := engines[v.Name]; exists {
			return nil, fmt.Errorf("duplicate model version %q", v.Name)
		}
		engine, err := risk.NewEngine(risk.ModelCoefficients{
			Age:            v.Weights.Age,
			Comorbidity:    v.Weights.Comorbidity,
			PriorAdmission: v.Weights.PriorAdmission,
			Diabetes:       v.Weights.Diabetes,
			CHF:            v.Weights.CHF,
			COPD:           v.Weights.COPD,
			Socioeconomic:  v.Weights.Socioeconomic,
			Shape:          v.Shape,
			Scale:          v.Scale,
		})
		if err != nil {
			return nil, fmt.Errorf("model version %q: %w", v.Name, err)
		}
		engines[v.Name] = engine
	}

	defaultVersion := cfg.DefaultVersion
	if defaultVersion == "" {
		defaultVersion = cfg.Versions[0].Name
	}
	if _, ok := engines[defaultVersion]; !ok {
		return nil, fmt.Errorf("default version %q is not declared", defaultVersion)
	}

	return &Registry{engines: engines, defaultVersion: defaultVersion}, nil
}

// Engine resolves a version name to its engine. An empty name selects the
// default version.
func (r *Registry) Engine(version string) (*risk.Engine, string, error) {
	if version == "" {
		version = r.defaultVersion
	}
	engine, ok := r.engines[version]
	if !ok {
		return nil, "", fmt.Errorf("unknown model version %q", version)
	}
	return engine, version, nil
}

// DefaultVersion returns the name of the version used when callers do not
// ask for one.
func (r *Registry) DefaultVersion() string {
	return r.defaultVersion
}

// Versions lists registered version names in stable order.
func (r *Registry) Versions() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
