package git

// Category is the display list a path belongs to.
type Category int

const (
	Dropped Category = iota
	Staged
	Unstaged
	Untracked
)

func (c Category) String() string {
	switch c {
	case Staged:
		return "staged"
	case Unstaged:
		return "unstaged"
	case Untracked:
		return "untracked"
	default:
		return "dropped"
	}
}

// Kind is the change that decided the label of a classified path.
type Kind int

const (
	KindNone Kind = iota
	KindModified
	KindDeleted
	KindRenamed
	KindTypeChange
	KindNew
	KindConflicted
)

// Label is the prefix shown before a path in the staged and unstaged lists.
func (k Kind) Label() string {
	switch k {
	case KindModified:
		return "modified: "
	case KindDeleted:
		return "deleted:  "
	case KindRenamed:
		return "renamed:  "
	case KindTypeChange:
		return "typechange:"
	case KindConflicted:
		return "unmerged: "
	default:
		return ""
	}
}

// Classification is the result of Classify.
type Classification struct {
	Category Category
	Kind     Kind
}

// Classify decides which list a path goes to. Ignored paths are dropped
// whatever else is set; index changes win over worktree changes, which win
// over untracked.
func Classify(s Status) Classification {
	switch {
	case s.Has(StatusIgnored):
		return Classification{Category: Dropped}
	case s.Has(indexMask):
		return Classification{Category: Staged, Kind: indexKind(s)}
	case s.Has(worktreeMask):
		return Classification{Category: Unstaged, Kind: worktreeKind(s)}
	case s.Has(StatusWTNew):
		return Classification{Category: Untracked, Kind: KindNew}
	default:
		return Classification{Category: Dropped}
	}
}

func indexKind(s Status) Kind {
	switch {
	case s.Has(StatusIndexModified):
		return KindModified
	case s.Has(StatusIndexDeleted):
		return KindDeleted
	case s.Has(StatusIndexRenamed):
		return KindRenamed
	case s.Has(StatusIndexTypeChange):
		return KindTypeChange
	default:
		return KindNew
	}
}

func worktreeKind(s Status) Kind {
	switch {
	case s.Has(StatusWTModified):
		return KindModified
	case s.Has(StatusWTDeleted):
		return KindDeleted
	case s.Has(StatusWTRenamed):
		return KindRenamed
	case s.Has(StatusWTTypeChange):
		return KindTypeChange
	default:
		return KindConflicted
	}
}
