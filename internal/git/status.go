package git

import (
	"strings"

	"github.com/henri123lemoine/rngit/internal/debug"
)

// Status is a bitset of raw per-path status flags.
type Status uint16

// Status flags, split by the layer they describe.
const (
	StatusIgnored Status = 1 << iota

	StatusIndexNew
	StatusIndexModified
	StatusIndexDeleted
	StatusIndexRenamed
	StatusIndexTypeChange

	StatusWTNew
	StatusWTModified
	StatusWTDeleted
	StatusWTRenamed
	StatusWTTypeChange

	StatusConflicted
)

const (
	indexMask = StatusIndexNew | StatusIndexModified | StatusIndexDeleted |
		StatusIndexRenamed | StatusIndexTypeChange

	// New worktree files are untracked, so WTNew is not part of this mask.
	worktreeMask = StatusWTModified | StatusWTDeleted | StatusWTRenamed |
		StatusWTTypeChange | StatusConflicted
)

// Has reports whether any of the given flags are set.
func (s Status) Has(flags Status) bool {
	return s&flags != 0
}

// StatusEntry is one changed path.
type StatusEntry struct {
	Path   string
	Status Status
}

// Status lists every changed, untracked and ignored path in the working tree.
func (r *Repo) Status() ([]StatusEntry, error) {
	if r.Root == "" {
		return nil, ErrNoWorktree
	}

	output, err := runGitInDir(r.Root, "status", "--porcelain=v2", "-z", "--ignored", "--untracked-files=all")
	if err != nil {
		return nil, err
	}

	return parseStatus(output), nil
}

// parseStatus parses `git status --porcelain=v2 -z` output. Records that
// don't fit the format are skipped.
func parseStatus(output string) []StatusEntry {
	var entries []StatusEntry

	records := strings.Split(output, "\x00")
	for i := 0; i < len(records); i++ {
		rec := records[i]
		if rec == "" {
			continue
		}

		var (
			path   string
			status Status
			ok     bool
		)
		switch rec[0] {
		case '#':
			continue
		case '1':
			path, status, ok = parseChanged(rec, 9)
		case '2':
			path, status, ok = parseChanged(rec, 10)
			// The original path follows as its own record.
			i++
		case 'u':
			var fields []string
			fields, ok = splitFields(rec, 11)
			if ok {
				path, status = fields[10], StatusConflicted
			}
		case '?':
			path, status, ok = parseSimple(rec, StatusWTNew)
		case '!':
			path, status, ok = parseSimple(rec, StatusIgnored)
		}

		if !ok {
			debug.Log("skipping malformed status record %q", rec)
			continue
		}
		entries = append(entries, StatusEntry{Path: path, Status: status})
	}

	return entries
}

// parseChanged handles ordinary ("1") and rename/copy ("2") records, whose
// path is the last of n space-separated fields.
func parseChanged(rec string, n int) (string, Status, bool) {
	fields, ok := splitFields(rec, n)
	if !ok || len(fields[1]) != 2 {
		return "", 0, false
	}
	return fields[n-1], statusFromXY(fields[1][0], fields[1][1]), true
}

func parseSimple(rec string, status Status) (string, Status, bool) {
	if len(rec) < 3 || rec[1] != ' ' {
		return "", 0, false
	}
	return rec[2:], status, true
}

func splitFields(rec string, n int) ([]string, bool) {
	fields := strings.SplitN(rec, " ", n)
	if len(fields) != n || fields[n-1] == "" {
		return nil, false
	}
	return fields, true
}

// statusFromXY maps porcelain XY codes onto index (X) and worktree (Y) flags.
func statusFromXY(x, y byte) Status {
	var s Status
	switch x {
	case 'A', 'C':
		s |= StatusIndexNew
	case 'M':
		s |= StatusIndexModified
	case 'D':
		s |= StatusIndexDeleted
	case 'R':
		s |= StatusIndexRenamed
	case 'T':
		s |= StatusIndexTypeChange
	}
	switch y {
	case 'A':
		s |= StatusWTNew
	case 'M':
		s |= StatusWTModified
	case 'D':
		s |= StatusWTDeleted
	case 'R':
		s |= StatusWTRenamed
	case 'T':
		s |= StatusWTTypeChange
	}
	return s
}
