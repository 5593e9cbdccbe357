package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/modeldocs/internal/foundation/errors"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	root := t.TempDir()
	cfg, err := Load(root, "", "https://raw.example.com/main")
	require.NoError(t, err)

	require.Equal(t, root, cfg.Root)
	require.Equal(t, "models", cfg.Models.Dir)
	require.Equal(t, ".tsv", cfg.Models.Extension)
	require.Equal(t, "ng_models", cfg.Models.GlobalPrefix)
	require.Equal(t, "models/ng_models_mermaid.mmd", cfg.DiagramPath())
	require.Equal(t, "README.template.md", cfg.Templates.TopLevel)
	require.Equal(t, "models/README.template.md", cfg.ModelsTemplatePath())
	require.Equal(t, "models/README.md", cfg.ModelsOutputPath())
	require.Equal(t, "models/samples/README.md", cfg.ModelOutputPath("samples"))
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileOverridesDefaultsAndFlagOverridesFile(t *testing.T) {
	root := t.TempDir()
	t.Setenv("MODELDOCS_TEST_VIEWER", "https://viewer.example/")
	yml := "raw_base: https://raw.example.com/from-file\n" +
		"models:\n  dir: data\n  title_suffix: Schema\n" +
		"viewer:\n  url: ${MODELDOCS_TEST_VIEWER}\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, DefaultFileName), []byte(yml), 0o600))

	cfg, err := Load(root, "", "")
	require.NoError(t, err)
	require.Equal(t, "https://raw.example.com/from-file", cfg.RawBase)
	require.Equal(t, "data", cfg.Models.Dir)
	require.Equal(t, "Schema", cfg.Models.TitleSuffix)
	require.Equal(t, "https://viewer.example/", cfg.Viewer.URL)
	require.Equal(t, "url", cfg.Viewer.Param)

	cfg, err = Load(root, "", "https://raw.example.com/from-flag")
	require.NoError(t, err)
	require.Equal(t, "https://raw.example.com/from-flag", cfg.RawBase)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	_, err := Load(t.TempDir(), "/nonexistent/modeldocs.yaml", "https://raw")
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, DefaultFileName), []byte("models: [\n"), 0o600))
	_, err := Load(root, "", "")
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Root = "/repo"
		cfg.RawBase = "https://raw.example.com/main"
		return cfg
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.RawBase = ""
	err := cfg.Validate()
	require.Error(t, err)
	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	require.Equal(t, ferrors.CategoryConfig, classified.Category())
	require.Contains(t, classified.Message(), RawBaseEnv)

	cfg = valid()
	cfg.RawBase = "  \t"
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.RawBase = "file:///srv/models/raw"
	require.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Models.Dir = "../elsewhere"
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Templates.TopLevel = "/etc/README.template.md"
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Output.PerModel = "docs/README.md"
	require.Error(t, cfg.Validate())
}

func TestLoadEnvFiles_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("MODELDOCS_TEST_A=from-file\nMODELDOCS_TEST_B=\"quoted\"\n"), 0o600))
	t.Setenv("MODELDOCS_TEST_A", "from-env")
	t.Setenv("MODELDOCS_TEST_B", "")
	require.NoError(t, os.Unsetenv("MODELDOCS_TEST_B"))

	loaded, err := LoadEnvFiles(dir, dir)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, "from-env", os.Getenv("MODELDOCS_TEST_A"))
	require.Equal(t, "quoted", os.Getenv("MODELDOCS_TEST_B"))
}

func TestLoadEnvFiles_Missing(t *testing.T) {
	loaded, err := LoadEnvFiles(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, loaded)
}
