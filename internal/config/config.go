package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/modeldocs/internal/foundation/errors"
)

// DefaultFileName is looked up at the repository root when no --config is given.
const DefaultFileName = "modeldocs.yaml"

// RawBaseEnv names the environment variable holding the raw-content base URL.
const RawBaseEnv = "RAW_BASE"

// Config holds everything a generation run needs. Root and RawBase come from
// the command line or environment; the rest describes the repository layout.
type Config struct {
	Root    string `yaml:"-"`
	RawBase string `yaml:"raw_base,omitempty"`

	Models    ModelsConfig    `yaml:"models"`
	Viewer    ViewerConfig    `yaml:"viewer"`
	Templates TemplatesConfig `yaml:"templates"`
	Output    OutputConfig    `yaml:"output"`
}

// ModelsConfig describes where versioned model files live.
type ModelsConfig struct {
	Dir          string `yaml:"dir"`           // relative to the repository root
	Extension    string `yaml:"extension"`     // suffix of versioned files
	GlobalPrefix string `yaml:"global_prefix"` // umbrella files directly under Dir
	Diagram      string `yaml:"diagram"`       // diagram source, relative to Dir
	TitleSuffix  string `yaml:"title_suffix"`
}

// ViewerConfig describes the external viewer wrapping raw links.
type ViewerConfig struct {
	URL   string `yaml:"url"`
	Param string `yaml:"param"`
}

// TemplatesConfig names the hand-authored templates.
type TemplatesConfig struct {
	TopLevel string `yaml:"top_level"` // required, relative to the repository root
	Models   string `yaml:"models"`    // optional, relative to Models.Dir
}

// OutputConfig names the generated documents.
type OutputConfig struct {
	TopLevel string `yaml:"top_level"` // relative to the repository root
	Models   string `yaml:"models"`    // relative to Models.Dir
	PerModel string `yaml:"per_model"` // filename inside each model folder
}

// Load builds the configuration for root. An explicit path must exist; the
// default modeldocs.yaml is optional. Values present in the file override the
// defaults, and rawBase (flag or environment) overrides the file.
func Load(root, path, rawBase string) (*Config, error) {
	cfg := Default()
	cfg.Root = root

	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, DefaultFileName)
	}

	// #nosec G304 -- the config path is chosen by the operator.
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(data, cfg); err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "invalid configuration file").
				Fatal().UserAction().
				WithContext("path", path).
				Build()
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// no file, defaults only
	default:
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "configuration file not readable").
			Fatal().UserAction().
			WithContext("path", path).
			Build()
	}

	if rawBase != "" {
		cfg.RawBase = rawBase
	}
	cfg.applyDefaults()
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}
