package build

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/modeldocs/internal/config"
	ferrors "git.home.luguber.info/inful/modeldocs/internal/foundation/errors"
	"git.home.luguber.info/inful/modeldocs/internal/markdown"
	"git.home.luguber.info/inful/modeldocs/internal/render"
	helpers "git.home.luguber.info/inful/modeldocs/internal/testutil/testutils"
)

const testRawBase = "https://raw.example.com/org/models/main"

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.RawBase = testRawBase
	return cfg
}

func mapFile(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }

func plan(t *testing.T, fsys fstest.MapFS) []Document {
	t.Helper()
	cfg := testConfig()
	snap, err := Discover(cfg, fsys)
	require.NoError(t, err)
	docs, err := NewPlanner(cfg, fsys).Plan(context.Background(), snap)
	require.NoError(t, err)
	return docs
}

func byPath(docs []Document) map[string]Document {
	m := make(map[string]Document, len(docs))
	for _, d := range docs {
		m[d.Path] = d
	}
	return m
}

func TestPlan_SamplesEndToEnd(t *testing.T) {
	fsys := fstest.MapFS{
		"README.template.md":              mapFile(helpers.TopLevelTemplate),
		"models/samples/samples_v1.0.tsv": mapFile("a\tb\n"),
		"models/samples/samples_v1.1.tsv": mapFile("a\tb\n"),
	}
	docs := plan(t, fsys)
	require.Len(t, docs, 3)
	require.Equal(t, []DocumentKind{KindTopLevel, KindModelsIndex, KindModel},
		[]DocumentKind{docs[0].Kind, docs[1].Kind, docs[2].Kind})

	files := byPath(docs)

	top := files["README.md"].Content
	require.Equal(t, 1, strings.Count(top, "| Samples Model |"))
	require.Contains(t, top, "[v1.1]("+testRawBase+"/models/samples/samples_v1.1.tsv)")
	require.NotContains(t, top, "samples_v1.0.tsv")
	require.Equal(t, []int{1}, markdown.TableRowCounts([]byte(top)))
	// No global versioned file, so the diagram region carries the placeholder.
	require.Contains(t, top, render.DiagramMissingPlaceholder)
	require.Contains(t, top, "# Models repository")

	page, ok := files["models/samples/README.md"]
	require.True(t, ok)
	require.Equal(t, "samples", page.Model)
	require.Contains(t, page.Content, "# Samples Model")
	require.Equal(t, 1, strings.Count(page.Content, ":heavy_check_mark:"))
	require.Contains(t, page.Content, "| :heavy_check_mark: |  |  | [1.1](")
	require.Contains(t, page.Content, "|  |  |  | [1.0](")
	require.Less(t, strings.Index(page.Content, "[1.1]("), strings.Index(page.Content, "[1.0]("))
}

func TestPlan_MissingTopLevelTemplateIsFatal(t *testing.T) {
	cfg := testConfig()
	fsys := fstest.MapFS{
		"models/samples/samples_v1.0.tsv": mapFile("x"),
	}
	snap, err := Discover(cfg, fsys)
	require.NoError(t, err)

	docs, err := NewPlanner(cfg, fsys).Plan(context.Background(), snap)
	require.Error(t, err)
	require.Nil(t, docs)

	classified, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	require.Equal(t, ferrors.CategoryTemplate, classified.Category())
	require.Equal(t, "README.template.md", classified.Context()["path"])
}

func TestPlan_ModelsIndexFallbackWithoutTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"README.template.md":           mapFile(helpers.TopLevelTemplate),
		"models/ng_models_v2.tsv":      mapFile("x"),
		"models/ng_models_v10.tsv":     mapFile("x"),
		"models/ng_models_vX.tsv":      mapFile("x"),
		"models/ng_models_mermaid.mmd": mapFile("graph TD\r\n  A-->B\r\n"),
		"models/beta/beta_v1.tsv":      mapFile("x"),
	}
	files := byPath(plan(t, fsys))

	index := files["models/README.md"].Content
	require.True(t, strings.HasPrefix(index, "# Models\n"))
	require.Contains(t, index, "## NG-wide model versions")
	require.Less(t, strings.Index(index, "| 10 |"), strings.Index(index, "| 2 |"))
	require.Contains(t, index, "- `beta/`")

	top := files["README.md"].Content
	require.Contains(t, top, "```mermaid\ngraph TD\n  A-->B\n```")
}

func TestPlan_ModelsTemplateRegion(t *testing.T) {
	modelsTemplate := "# Models\n\nIntro.\n\n<!-- BEGIN AUTO: MODEL-FOLDERS -->\nstale\n<!-- END AUTO: MODEL-FOLDERS -->\n\nOutro.\n"
	fsys := fstest.MapFS{
		"README.template.md":        mapFile(helpers.TopLevelTemplate),
		"models/README.template.md": mapFile(modelsTemplate),
		"models/b_model/b_v1.tsv":   mapFile("x"),
		"models/a_model/a_v1.tsv":   mapFile("x"),
	}
	docs := plan(t, fsys)
	require.Len(t, docs, 4)
	require.Equal(t, "models/a_model/README.md", docs[2].Path)
	require.Equal(t, "models/b_model/README.md", docs[3].Path)

	index := byPath(docs)["models/README.md"].Content
	require.NotContains(t, index, "stale")
	require.Contains(t, index, "Outro.")
	require.Contains(t, index, "_No `ng_models_v*.tsv` files found in the `models/` folder._")
	require.Contains(t, index, "- [`a_model/`](./a_model)\n- [`b_model/`](./b_model)")
}

func TestPlan_EmptyRepository(t *testing.T) {
	docs := plan(t, fstest.MapFS{"README.template.md": mapFile(helpers.TopLevelTemplate)})
	require.Len(t, docs, 2)
	require.Contains(t, docs[0].Content, render.NoModelsPlaceholder)
	require.Contains(t, docs[0].Content, render.DiagramMissingPlaceholder)
}

func TestPlan_IsIdempotentOnItsOwnOutput(t *testing.T) {
	fsys := fstest.MapFS{
		"README.template.md":      mapFile(helpers.TopLevelTemplate),
		"models/a_model/a_v1.tsv": mapFile("x"),
	}
	first := plan(t, fsys)

	// Feed the generated top-level document back in as its own template.
	fsys["README.template.md"] = mapFile(first[0].Content)
	second := plan(t, fsys)
	require.Equal(t, first[0].Content, second[0].Content)
}
