package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henri123lemoine/rngit/internal/git"
)

func fullSnapshot() git.Snapshot {
	return git.Snapshot{
		Head: &git.HeadInfo{
			RefName: "main",
			Hash:    "0123456789abcdef0123456789abcdef01234567",
			Message: "Add parser\n\nLonger body.",
		},
		Branches:  []string{"main", "feature"},
		Untracked: []string{"new.txt"},
		Unstaged: []git.StatusEntry{
			{Path: "mod.go", Status: git.StatusWTModified},
			{Path: "gone.go", Status: git.StatusWTDeleted},
		},
		Staged: []git.StatusEntry{
			{Path: "a.txt", Status: git.StatusIndexModified | git.StatusWTModified},
			{Path: "added.go", Status: git.StatusIndexNew},
			{Path: "link", Status: git.StatusIndexTypeChange},
		},
	}
}

func TestDocumentSectionOrder(t *testing.T) {
	doc := Document(RenderParams{Title: "rngit", Snapshot: fullSnapshot()})

	want := strings.Join([]string{
		"rngit",
		"Head: main Add parser",
		"Branches:",
		"\tmain",
		"\tfeature",
		"",
		"Untracked changes:",
		"new.txt",
		"",
		"Unstaged changes:",
		"modified: mod.go",
		"deleted:  gone.go",
		"",
		"Staged changes:",
		"modified: a.txt",
		"added.go",
		"typechange:link",
		"",
	}, "\n")
	assert.Equal(t, want, doc)
}

func TestDocumentTitleOnly(t *testing.T) {
	doc := Document(RenderParams{Title: "rngit"})
	assert.Equal(t, "rngit\n", doc)
}

func TestDocumentOpenError(t *testing.T) {
	doc := Document(RenderParams{
		Title:    "rngit",
		OpenErr:  errors.New("not a git repository: /tmp/x"),
		Snapshot: fullSnapshot(),
	})

	assert.Equal(t, "rngit\nError: not a git repository: /tmp/x\n", doc)
}

func TestDocumentDetachedHead(t *testing.T) {
	snap := git.Snapshot{Head: &git.HeadInfo{Hash: "fedcba9876543210", Message: "wip"}}
	doc := Document(RenderParams{Title: "rngit", Snapshot: snap})

	assert.Contains(t, doc, "Head: (detached fedcba9) wip\n")
}

func TestDocumentNotesAtSectionPosition(t *testing.T) {
	snap := git.Snapshot{
		Head:     &git.HeadInfo{RefName: "main", Hash: "abc"},
		Branches: nil,
		Staged:   []git.StatusEntry{{Path: "x", Status: git.StatusIndexDeleted}},
		Notes: []git.Note{
			{Section: git.SectionStatus, Text: "status failed"},
			{Section: git.SectionBranches, Text: "branches failed"},
		},
	}
	lines := strings.Split(Document(RenderParams{Title: "t", Snapshot: snap}), "\n")

	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "Head: main ", lines[1])
	assert.Equal(t, "branches failed", lines[2])
	assert.Equal(t, "status failed", lines[3])
	assert.Contains(t, lines, "deleted:  x")
}

func TestDocumentIcons(t *testing.T) {
	snap := git.Snapshot{Untracked: []string{"main.go"}}

	plain := Document(RenderParams{Title: "t", Snapshot: snap})
	withIcons := Document(RenderParams{Title: "t", Snapshot: snap, ShowIcons: true})

	assert.Contains(t, plain, "\nmain.go\n")
	assert.Contains(t, withIcons, "main.go\n")
	assert.NotContains(t, withIcons, "\nmain.go\n", "expected an icon before the path")
}

func TestRenderFillsRegion(t *testing.T) {
	out := Render(RenderParams{Title: "rngit", Snapshot: fullSnapshot(), Width: 30, Height: 8})

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 8)
	for i, line := range lines {
		assert.Equal(t, 30, lipgloss.Width(line), "line %d", i)
	}
	assert.Equal(t, "    main", strings.TrimRight(lines[3], " "), "tabs expand to spaces")
}

func TestRenderClipsLongLines(t *testing.T) {
	snap := git.Snapshot{Untracked: []string{strings.Repeat("x", 50)}}
	out := Render(RenderParams{Title: "t", Snapshot: snap, Width: 10, Height: 5})

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 10)
	}
	assert.Contains(t, out, "…")
}

func TestRenderHelpFooter(t *testing.T) {
	out := Render(RenderParams{Title: "t", Width: 20, Height: 4, Help: "r refresh • q quit"})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[3], "r refresh")
}

func TestRenderWithoutSize(t *testing.T) {
	p := RenderParams{Title: "rngit", Snapshot: fullSnapshot()}
	assert.Equal(t, Document(p), Render(p))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "one", firstLine("one\ntwo"))
	assert.Equal(t, "solo", firstLine("solo"))
	assert.Equal(t, "", firstLine(""))
}
