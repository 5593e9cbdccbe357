package config

import (
	"io/fs"
	"path"
	"strings"

	ferrors "git.home.luguber.info/inful/modeldocs/internal/foundation/errors"
)

// Validate checks the configuration before any file is read. A missing raw
// base URL is the one required external value and is reported as such.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.RawBase) == "" {
		return ferrors.ConfigError(RawBaseEnv+" environment variable must be set to the raw content base URL").
			WithContext("flag", "--raw-base").
			Build()
	}
	if c.Root == "" {
		return ferrors.ConfigError("repository root is not set").Build()
	}

	paths := [][2]string{
		{"models.dir", c.Models.Dir},
		{"models.diagram", c.DiagramPath()},
		{"templates.top_level", c.Templates.TopLevel},
		{"templates.models", c.ModelsTemplatePath()},
		{"output.top_level", c.Output.TopLevel},
		{"output.models", c.ModelsOutputPath()},
		{"output.per_model", c.Output.PerModel},
	}
	for _, p := range paths {
		if !fs.ValidPath(p[1]) {
			return ferrors.ConfigError("path must be relative to the repository root").
				WithContext("field", p[0]).
				WithContext("value", p[1]).
				Build()
		}
	}
	if strings.Contains(c.Output.PerModel, "/") {
		return ferrors.ConfigError("per-model output must be a plain filename").
			WithContext("value", c.Output.PerModel).
			Build()
	}
	if c.Models.GlobalPrefix == "" || c.Models.Extension == "" {
		return ferrors.ConfigError("models.global_prefix and models.extension must not be empty").Build()
	}
	return nil
}

// DiagramPath is the diagram source relative to the repository root.
func (c *Config) DiagramPath() string { return path.Join(c.Models.Dir, c.Models.Diagram) }

// ModelsTemplatePath is the models-index template relative to the repository root.
func (c *Config) ModelsTemplatePath() string { return path.Join(c.Models.Dir, c.Templates.Models) }

// ModelsOutputPath is the models-index output relative to the repository root.
func (c *Config) ModelsOutputPath() string { return path.Join(c.Models.Dir, c.Output.Models) }

// ModelOutputPath is the generated README of one model folder.
func (c *Config) ModelOutputPath(folder string) string {
	return path.Join(c.Models.Dir, folder, c.Output.PerModel)
}
