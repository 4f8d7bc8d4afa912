package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
)

// ErrUnbornHead is returned when HEAD names a branch with no commits yet.
var ErrUnbornHead = errors.New("HEAD has no commits yet")

// HeadInfo describes the checked-out commit.
type HeadInfo struct {
	// RefName is the branch shorthand. Empty when detached or unborn.
	RefName string

	// Hash is the full commit id.
	Hash string

	// Message is the full commit message.
	Message string
}

// IsZero reports whether nothing about HEAD could be resolved.
func (h HeadInfo) IsZero() bool {
	return h == HeadInfo{}
}

// Detached reports whether HEAD points straight at a commit.
func (h HeadInfo) Detached() bool {
	return h.RefName == "" && h.Hash != ""
}

// Head resolves HEAD. Whatever could be resolved is returned even when err
// is non-nil, so callers can show partial information.
func (r *Repo) Head() (HeadInfo, error) {
	var info HeadInfo

	ref, err := r.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return info, fmt.Errorf("read HEAD: %w", err)
	}

	if ref.Type() == plumbing.SymbolicReference {
		target, err := r.repo.Storer.Reference(ref.Target())
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return info, ErrUnbornHead
		}
		if err != nil {
			return info, fmt.Errorf("resolve %s: %w", ref.Target(), err)
		}
		if ref.Target().IsBranch() {
			info.RefName = ref.Target().Short()
		}
		ref = target
	}

	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return info, fmt.Errorf("resolve commit %s: %w", ref.Hash(), err)
	}
	info.Hash = commit.Hash.String()
	info.Message = commit.Message

	return info, nil
}
