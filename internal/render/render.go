// Package render produces the markdown fragments that are substituted into
// templates or written as whole documents. Every renderer returns a
// documented placeholder instead of an empty table when it has no data.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/modeldocs/internal/discovery"
	"git.home.luguber.info/inful/modeldocs/internal/links"
	"git.home.luguber.info/inful/modeldocs/internal/templates"
)

// Placeholders emitted when there is nothing to render.
const (
	NoModelsPlaceholder        = "_No model folders have been detected yet._"
	NoFoldersPlaceholder       = "_No per-model folders detected yet._"
	NoVersionsPlaceholder      = "_No versioned files found for this model._"
	DiagramMissingPlaceholder  = "_Mermaid diagram not available yet._"
	noGlobalFilesFormat        = "_No `%s_v*%s` files found in the `%s/` folder._"
	noValidGlobalVersionFormat = "_No valid `%s_v*%s` version filenames found._"
)

// DefaultTitleSuffix is appended to every model title.
const DefaultTitleSuffix = "Model"

// Options carries the layout values the fragments mention.
type Options struct {
	Links       links.Builder
	ModelsDir   string // repository-relative models directory, e.g. "models"
	Extension   string // e.g. ".tsv"
	TitleSuffix string
}

func (o Options) suffix() string {
	if o.TitleSuffix == "" {
		return DefaultTitleSuffix
	}
	return o.TitleSuffix
}

var upper = cases.Upper(language.Und)

// ModelTitle turns a folder name into a display title: "sample_data" ->
// "Sample data Model". Only the first character is upper-cased.
func ModelTitle(folder, suffix string) string {
	if suffix == "" {
		suffix = DefaultTitleSuffix
	}
	base := strings.TrimSpace(strings.ReplaceAll(folder, "_", " "))
	if base == "" {
		return suffix
	}
	r, size := utf8.DecodeRuneInString(base)
	return upper.String(string(r)) + base[size:] + " " + suffix
}

// SummaryTable lists every model folder with links to its latest file.
// Groups without a latest file are omitted.
func SummaryTable(groups map[string]discovery.ModelGroup, opts Options) string {
	if len(groups) == 0 {
		return NoModelsPlaceholder
	}

	lines := []string{
		"| Model | Folder | Latest TSV | Visualisation |",
		"|-------|--------|-----------|---------------|",
	}
	for _, name := range discovery.SortedNames(groups) {
		latest, ok := discovery.LatestInGroup(groups[name])
		if !ok {
			continue
		}
		folder := joinRel(opts.ModelsDir, name)
		lines = append(lines, fmt.Sprintf("| %s | [`%s`](%s) | [v%s](%s) | [Open](%s) |",
			ModelTitle(name, opts.suffix()),
			folder, folder,
			latest.Version, opts.Links.Raw(latest.Path),
			opts.Links.Viewer(latest.Path)))
	}
	return strings.Join(lines, "\n")
}

// GlobalTable lists every global versioned file, newest first.
func GlobalTable(set discovery.GlobalSet, opts Options) string {
	if !set.Matched() {
		return fmt.Sprintf(noGlobalFilesFormat, set.Prefix, opts.Extension, opts.ModelsDir)
	}
	if len(set.Files) == 0 {
		return fmt.Sprintf(noValidGlobalVersionFormat, set.Prefix, opts.Extension)
	}

	lines := []string{
		"### NG-wide model versions\n",
		"| Version | Raw TSV | Visualisation |",
		"|---------|---------|---------------|",
	}
	for _, f := range discovery.SortDescending(set.Files) {
		lines = append(lines, fmt.Sprintf("| %s | [TSV](%s) | [Open in Modeller](%s) |",
			f.Version, opts.Links.Raw(f.Path), opts.Links.Viewer(f.Path)))
	}
	return strings.Join(lines, "\n")
}

// DetailBlock renders the collapsible version history of one model. The
// Date, Author and Comment cells are left blank for manual editing.
func DetailBlock(title string, group discovery.ModelGroup, opts Options) string {
	files := discovery.SortDescending(group.Files)
	if len(files) == 0 {
		return NoVersionsPlaceholder
	}
	latest := files[0]

	lines := []string{
		"<details>",
		fmt.Sprintf("<summary>%s: <a href=\"%s\">%s</a></summary>\n",
			title, opts.Links.Viewer(latest.Path), latest.Version),
		fmt.Sprintf("## %s Details\n", title),
		"| | Date | Author | Model | Comment |",
		"| :-----------: | :-----------: | :-----------: | :-----------: | ----------- |",
	}
	for i, f := range files {
		status := ""
		if i == 0 {
			status = ":heavy_check_mark:"
		}
		lines = append(lines, fmt.Sprintf("| %s |  |  | [%s](%s) |  |",
			status, f.Version, opts.Links.Viewer(f.Path)))
	}
	// Spacer row fixes the column widths on GitHub.
	lines = append(lines,
		"| | <img width=325 /> |<img width=175 /> | <img width=60 /> | <img width=500 /> |",
		"</details>\n")
	return strings.Join(lines, "\n")
}

// FolderList renders a bullet list of model folders relative to the models README.
func FolderList(groups map[string]discovery.ModelGroup) string {
	if len(groups) == 0 {
		return NoFoldersPlaceholder
	}
	lines := make([]string, 0, len(groups))
	for _, name := range discovery.SortedNames(groups) {
		lines = append(lines, fmt.Sprintf("- [`%s/`](./%s)", name, name))
	}
	return strings.Join(lines, "\n")
}

// ModelsFolderBlock is the MODEL-FOLDERS region of the models README: the
// global version table followed by the folder list.
func ModelsFolderBlock(set discovery.GlobalSet, groups map[string]discovery.ModelGroup, opts Options) string {
	return strings.Join([]string{
		GlobalTable(set, opts),
		"",
		"### Model folders\n",
		FolderList(groups),
	}, "\n")
}

// DiagramBlock wraps diagram source in a mermaid fence. Source is passed
// through verbatim apart from newline normalisation.
func DiagramBlock(source string, ok bool) string {
	source = strings.TrimSpace(templates.NormalizeNewlines(source))
	if !ok || source == "" {
		return DiagramMissingPlaceholder
	}
	return "```mermaid\n" + source + "\n```\n"
}

// ModelPage renders the fully generated README of a model folder.
func ModelPage(title, block string) string {
	lines := []string{
		fmt.Sprintf("# %s\n", title),
		"This folder contains versioned TSV definitions of the model, " +
			"intended for use with the National Gallery Dynamic Modeller.\n",
	}
	if block != "" {
		lines = append(lines, "## Versions\n", block)
	}
	return strings.Join(lines, "\n")
}

// ModelsIndexFallback renders a complete models README for repositories
// without a models template.
func ModelsIndexFallback(set discovery.GlobalSet, groups map[string]discovery.ModelGroup, opts Options) string {
	lines := []string{
		"# Models\n",
		"This folder contains the NG-wide model definitions and individual model folders.\n",
	}
	if set.Matched() {
		lines = append(lines, "\n## NG-wide model versions\n", GlobalTable(set, opts))
	}
	if len(groups) > 0 {
		lines = append(lines, "\n## Model folders\n")
		for _, name := range discovery.SortedNames(groups) {
			lines = append(lines, fmt.Sprintf("- `%s/`", name))
		}
	}
	return strings.Join(lines, "\n")
}

// joinRel joins POSIX path segments, dropping a "." or empty models dir.
func joinRel(dir, name string) string {
	if dir == "" || dir == "." {
		return name
	}
	return strings.TrimSuffix(dir, "/") + "/" + name
}
