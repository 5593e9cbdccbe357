package config

import (
	"git.home.luguber.info/inful/modeldocs/internal/links"
	"git.home.luguber.info/inful/modeldocs/internal/render"
	"git.home.luguber.info/inful/modeldocs/internal/versioning"
)

// Default returns the layout of a model repository as the generator expects
// it when no configuration file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Models.Dir == "" {
		c.Models.Dir = "models"
	}
	if c.Models.Extension == "" {
		c.Models.Extension = versioning.DefaultExtension
	}
	if c.Models.GlobalPrefix == "" {
		c.Models.GlobalPrefix = "ng_models"
	}
	if c.Models.Diagram == "" {
		c.Models.Diagram = "ng_models_mermaid.mmd"
	}
	if c.Models.TitleSuffix == "" {
		c.Models.TitleSuffix = render.DefaultTitleSuffix
	}
	if c.Viewer.URL == "" {
		c.Viewer.URL = links.DefaultViewerURL
	}
	if c.Viewer.Param == "" {
		c.Viewer.Param = links.DefaultViewerParam
	}
	if c.Templates.TopLevel == "" {
		c.Templates.TopLevel = "README.template.md"
	}
	if c.Templates.Models == "" {
		c.Templates.Models = "README.template.md"
	}
	if c.Output.TopLevel == "" {
		c.Output.TopLevel = "README.md"
	}
	if c.Output.Models == "" {
		c.Output.Models = "README.md"
	}
	if c.Output.PerModel == "" {
		c.Output.PerModel = "README.md"
	}
}
