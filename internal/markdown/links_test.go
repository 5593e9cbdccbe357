package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractLinks_InlineLink(t *testing.T) {
	links := ExtractLinks([]byte("See [API](api.md) for details."), Options{})
	require.Len(t, links, 1)
	require.Equal(t, LinkKindInline, links[0].Kind)
	require.Equal(t, "api.md", links[0].Destination)
	require.Equal(t, "API", links[0].Text)
}

func TestExtractLinks_ImageLink(t *testing.T) {
	links := ExtractLinks([]byte("![Diagram](diagram.png)"), Options{})
	require.Len(t, links, 1)
	require.Equal(t, LinkKindImage, links[0].Kind)
	require.Equal(t, "diagram.png", links[0].Destination)
}

func TestExtractLinks_AutoLink(t *testing.T) {
	links := ExtractLinks([]byte("<https://example.com/path>"), Options{})
	require.Len(t, links, 1)
	require.Equal(t, LinkKindAuto, links[0].Kind)
	require.Equal(t, "https://example.com/path", links[0].Destination)
}

func TestExtractLinks_ReferenceDefinition(t *testing.T) {
	links := ExtractLinks([]byte("See [API][ref].\n\n[ref]: api.md\n"), Options{})
	require.Len(t, links, 2)
	require.Equal(t, LinkKindInline, links[0].Kind)
	require.Equal(t, LinkKindReferenceDefinition, links[1].Kind)
	require.Equal(t, "api.md", links[1].Destination)
}

func TestExtractLinks_SkipsCode(t *testing.T) {
	src := []byte("Inline: `[Link](./ignored.md)`\n\n```\n[Link](./fenced.md)\n```\n\nReal: [OK](./real.md)\n")
	links := ExtractLinks(src, Options{})
	require.Len(t, links, 1)
	require.Equal(t, "./real.md", links[0].Destination)
}

func TestExtractLinks_TableCells(t *testing.T) {
	src := []byte("| Model | Folder |\n|---|---|\n| Samples Model | [samples](models/samples) |\n")
	links := ExtractLinks(src, Options{Tables: true})
	require.Len(t, links, 1)
	require.Equal(t, "models/samples", links[0].Destination)
}

func TestTableRowCounts(t *testing.T) {
	src := []byte("# T\n\n| a | b |\n|---|---|\n| 1 | 2 |\n| 3 | 4 |\n\ntext\n\n| x |\n|---|\n| y |\n")
	require.Equal(t, []int{2, 1}, TableRowCounts(src))
	require.Empty(t, TableRowCounts([]byte("_No model folders have been detected yet._")))
}
