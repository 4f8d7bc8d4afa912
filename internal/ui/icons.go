package ui

import (
	"os"
	"path"
	"strings"
	"time"

	devicons "github.com/epilande/go-devicons"
)

// iconFileInfo satisfies os.FileInfo for icon lookup by name only.
type iconFileInfo struct {
	name  string
	isDir bool
}

func (i iconFileInfo) Name() string { return i.name }

func (i iconFileInfo) Size() int64 { return 0 }

func (i iconFileInfo) Mode() os.FileMode {
	if i.isDir {
		return os.ModeDir | 0o755
	}
	return 0
}

func (i iconFileInfo) ModTime() time.Time { return time.Time{} }

func (i iconFileInfo) IsDir() bool { return i.isDir }

func (i iconFileInfo) Sys() any { return nil }

// iconPrefix returns the file icon for a repository-relative path followed
// by a space, or "" if there is none.
func iconPrefix(p string) string {
	isDir := strings.HasSuffix(p, "/")
	name := path.Base(strings.TrimSuffix(p, "/"))
	if name == "" || name == "." {
		return ""
	}
	icon := devicons.IconForInfo(iconFileInfo{name: name, isDir: isDir}).Icon
	if icon == "" {
		return ""
	}
	return icon + " "
}
