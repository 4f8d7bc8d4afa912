package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/henri123lemoine/rngit/internal/git"
)

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	Title      string
	OpenErr    error
	Snapshot   git.Snapshot
	Width      int
	Height     int
	HeadColor  string
	Background string
	ShowIcons  bool
	Help       string
}

// tabWidth is how many cells a tab expands to on screen.
const tabWidth = 4

// Render lays the dashboard document into a Width x Height region. Lines
// past the right or bottom edge are clipped. Without a known size the bare
// document is returned.
func Render(p RenderParams) string {
	doc := Document(p)
	if p.Width <= 0 || p.Height <= 0 {
		return doc
	}

	bodyHeight := p.Height
	if p.Help != "" && bodyHeight > 1 {
		bodyHeight--
	}

	lines := strings.Split(strings.TrimSuffix(doc, "\n"), "\n")
	if len(lines) > bodyHeight {
		lines = lines[:bodyHeight]
	}
	for i, line := range lines {
		lines[i] = clip(strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth)), p.Width)
	}

	var opts []lipgloss.WhitespaceOption
	if p.Background != "" {
		opts = append(opts, lipgloss.WithWhitespaceBackground(lipgloss.Color(p.Background)))
	}

	screen := lipgloss.Place(p.Width, bodyHeight, lipgloss.Left, lipgloss.Top, strings.Join(lines, "\n"), opts...)
	if bodyHeight < p.Height {
		footer := clip(HelpStyle.Render(p.Help), p.Width)
		screen += "\n" + lipgloss.PlaceHorizontal(p.Width, lipgloss.Left, footer, opts...)
	}
	return screen
}

// Document composes the dashboard text. The title always comes first; every
// other section appears only when it has content.
func Document(p RenderParams) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(p.Title) + "\n")

	if p.OpenErr != nil {
		b.WriteString(ErrorStyle.Render("Error: "+p.OpenErr.Error()) + "\n")
		return b.String()
	}

	snap := p.Snapshot

	if snap.Head != nil {
		b.WriteString(renderHead(*snap.Head, p.HeadColor) + "\n")
	}
	writeNotes(&b, snap.NotesFor(git.SectionHead))

	writeNotes(&b, snap.NotesFor(git.SectionBranches))
	if len(snap.Branches) > 0 {
		b.WriteString(HeaderStyle.Render("Branches:") + "\n")
		for _, name := range snap.Branches {
			b.WriteString("\t" + name + "\n")
		}
	}

	writeNotes(&b, snap.NotesFor(git.SectionStatus))
	if len(snap.Untracked) > 0 {
		b.WriteString("\n" + HeaderStyle.Render("Untracked changes:") + "\n")
		for _, path := range snap.Untracked {
			b.WriteString(pathText(path, p.ShowIcons) + "\n")
		}
	}
	if len(snap.Unstaged) > 0 {
		b.WriteString("\n" + HeaderStyle.Render("Unstaged changes:") + "\n")
		writeEntries(&b, snap.Unstaged, p.ShowIcons)
	}
	if len(snap.Staged) > 0 {
		b.WriteString("\n" + HeaderStyle.Render("Staged changes:") + "\n")
		writeEntries(&b, snap.Staged, p.ShowIcons)
	}

	return b.String()
}

// renderHead renders "Head: <ref> <summary>".
func renderHead(head git.HeadInfo, color string) string {
	style := HeadRefStyle
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}

	ref := head.RefName
	if head.Detached() {
		ref = "(detached " + shortHash(head.Hash) + ")"
	}

	return "Head: " + style.Render(ref) + " " + firstLine(head.Message)
}

func writeEntries(b *strings.Builder, entries []git.StatusEntry, icons bool) {
	for _, e := range entries {
		label := git.Classify(e.Status).Kind.Label()
		b.WriteString(label + pathText(e.Path, icons) + "\n")
	}
}

func writeNotes(b *strings.Builder, notes []string) {
	for _, n := range notes {
		b.WriteString(ErrorStyle.Render(n) + "\n")
	}
}

func pathText(path string, icons bool) string {
	if !icons {
		return path
	}
	return iconPrefix(path) + path
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

func clip(line string, width int) string {
	if lipgloss.Width(line) <= width {
		return line
	}
	return truncate.StringWithTail(line, uint(width), "…")
}
