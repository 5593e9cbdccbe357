package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"git.home.luguber.info/inful/modeldocs/internal/build"
	"git.home.luguber.info/inful/modeldocs/internal/config"
	"git.home.luguber.info/inful/modeldocs/internal/discovery"
	"git.home.luguber.info/inful/modeldocs/internal/git"
	"git.home.luguber.info/inful/modeldocs/internal/render"
)

var (
	// titleStyle for section headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for the summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

func renderDiscover(w io.Writer, cfg *config.Config, snap *build.Snapshot, rev *git.Revision) {
	header := fmt.Sprintf("%s %s\n%s %s",
		dimStyle.Render("Root:"), cfg.Root,
		dimStyle.Render("Models:"), cfg.Models.Dir+"/")
	if rev != nil {
		branch := rev.Branch
		if branch == "" {
			branch = "(detached)"
		}
		header += fmt.Sprintf("\n%s %s @ %s", dimStyle.Render("Revision:"), successStyle.Render(branch), rev.Short())
	}
	_, _ = fmt.Fprintln(w, boxStyle.Render(header))

	_, _ = fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Models (%d)", len(snap.Models))))
	if len(snap.Models) == 0 {
		_, _ = fmt.Fprintln(w, "  "+dimStyle.Render(render.NoModelsPlaceholder))
	}
	for _, name := range discovery.SortedNames(snap.Models) {
		group := snap.Models[name]
		latest, _ := discovery.LatestInGroup(group)
		_, _ = fmt.Fprintf(w, "  %-24s %s %s\n",
			render.ModelTitle(name, cfg.Models.TitleSuffix),
			successStyle.Render("v"+latest.Version.String()),
			dimStyle.Render(fmt.Sprintf("(%d versions, %s)", len(group.Files), latest.Path)))
	}

	_, _ = fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Global %s files (%d)", cfg.Models.GlobalPrefix, len(snap.Global.Files))))
	for _, f := range discovery.SortDescending(snap.Global.Files) {
		_, _ = fmt.Fprintf(w, "  %-10s %s\n", f.Version, dimStyle.Render(f.Path))
	}
	for _, skipped := range snap.Global.Skipped {
		_, _ = fmt.Fprintf(w, "  %s %s\n", warnStyle.Render("skipped"), dimStyle.Render(skipped))
	}
}

func renderGenerate(w io.Writer, result *build.Result, dryRun bool) {
	verb := "updated"
	if dryRun {
		verb = "would change"
	}
	for _, d := range result.Documents {
		mark := dimStyle.Render("unchanged")
		if d.Changed {
			mark = successStyle.Render(verb)
		}
		_, _ = fmt.Fprintf(w, "  %-12s %s\n", mark, d.Path)
	}
	summary := fmt.Sprintf("%d documents, %d %s in %s",
		len(result.Documents), result.Changed(), verb, result.Duration.Round(time.Millisecond))
	_, _ = fmt.Fprintln(w, boxStyle.Render(summary))
}

func renderCheck(w io.Writer, report *build.CheckReport) {
	if report.OK() {
		_, _ = fmt.Fprintln(w, successStyle.Render("All generated documents are up to date."))
		return
	}
	if len(report.Stale) > 0 {
		_, _ = fmt.Fprintln(w, titleStyle.Render("Stale documents"))
		for _, s := range report.Stale {
			state := "differs"
			if s.Missing {
				state = "missing"
			}
			_, _ = fmt.Fprintf(w, "  %s %s %s\n", errorStyle.Render(state), s.Path, dimStyle.Render(shortFingerprint(s.Expected)))
		}
	}
	if len(report.Broken) > 0 {
		_, _ = fmt.Fprintln(w, titleStyle.Render("Broken relative links"))
		for _, b := range report.Broken {
			_, _ = fmt.Fprintf(w, "  %s %s -> %s %s\n",
				errorStyle.Render("broken"), b.Document, b.Destination, dimStyle.Render("("+b.Reason+")"))
		}
	}
	_, _ = fmt.Fprintln(w, dimStyle.Render("Run `modeldocs generate` to refresh generated documents."))
}

func shortFingerprint(fp string) string {
	fp = strings.TrimSpace(fp)
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}
