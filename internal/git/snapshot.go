package git

import (
	"errors"

	"github.com/henri123lemoine/rngit/internal/debug"
)

// Section identifies where in the dashboard a note belongs.
type Section int

const (
	SectionHead Section = iota
	SectionBranches
	SectionStatus
)

// Note is a diagnostic produced while building a snapshot.
type Note struct {
	Section Section
	Text    string
}

// Snapshot is the repository state as of the last refresh.
type Snapshot struct {
	Head      *HeadInfo
	Branches  []string
	Untracked []string
	Unstaged  []StatusEntry
	Staged    []StatusEntry
	Notes     []Note
}

// NotesFor returns the note texts belonging to a section, in order.
func (s Snapshot) NotesFor(section Section) []string {
	var texts []string
	for _, n := range s.Notes {
		if n.Section == section {
			texts = append(texts, n.Text)
		}
	}
	return texts
}

// Build queries src and classifies its status entries. A failing step adds
// a note and leaves its section empty; the other steps still run.
func Build(src Source) Snapshot {
	defer debug.Timed("snapshot")()

	var snap Snapshot

	head, err := src.Head()
	if err != nil && !errors.Is(err, ErrUnbornHead) {
		snap.note(SectionHead, err)
	}
	if !head.IsZero() {
		snap.Head = &head
	}

	branches, err := src.Branches()
	if err != nil {
		snap.note(SectionBranches, err)
	} else {
		snap.Branches = branches
	}

	entries, err := src.Status()
	if err != nil {
		snap.note(SectionStatus, err)
	}
	for _, e := range entries {
		switch Classify(e.Status).Category {
		case Staged:
			snap.Staged = append(snap.Staged, e)
		case Unstaged:
			snap.Unstaged = append(snap.Unstaged, e)
		case Untracked:
			snap.Untracked = append(snap.Untracked, e.Path)
		}
	}

	debug.Log("snapshot: %d branches, %d staged, %d unstaged, %d untracked, %d notes",
		len(snap.Branches), len(snap.Staged), len(snap.Unstaged), len(snap.Untracked), len(snap.Notes))
	return snap
}

func (s *Snapshot) note(section Section, err error) {
	debug.Log("snapshot note: %v", err)
	s.Notes = append(s.Notes, Note{Section: section, Text: err.Error()})
}
