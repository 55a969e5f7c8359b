package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Artifact identifies one of the filesystem entries a Scaffolder manages.
type Artifact int

// Artifacts in the order Run ensures them.
const (
	FormatterConfig Artifact = iota
	EntrySource
	BuildManifest
	BuildDirectory
)

var artifactNames = [...]string{
	FormatterConfig: ".clang-format",
	EntrySource:     "main.cpp",
	BuildManifest:   "CMakeLists.txt",
	BuildDirectory:  "build",
}

// Artifacts returns every artifact in ensure order.
func Artifacts() []Artifact {
	return []Artifact{FormatterConfig, EntrySource, BuildManifest, BuildDirectory}
}

// Name returns the artifact's fixed name relative to the target directory.
func (a Artifact) Name() string {
	if a < 0 || int(a) >= len(artifactNames) {
		return fmt.Sprintf("artifact(%d)", int(a))
	}
	return artifactNames[a]
}

func (a Artifact) String() string { return a.Name() }

// IsDir reports whether the artifact is a directory rather than a file.
func (a Artifact) IsDir() bool { return a == BuildDirectory }

// Template returns the literal content written for a file artifact.
// Directories have no content.
func (a Artifact) Template() string {
	switch a {
	case FormatterConfig:
		return clangFormatTemplate
	case EntrySource:
		return mainSourceTemplate
	case BuildManifest:
		return cmakeListsTemplate
	default:
		return ""
	}
}

// Path joins the artifact name onto dir.
func (a Artifact) Path(dir string) string {
	return filepath.Join(dir, a.Name())
}

// Present reports whether any filesystem entry exists at the artifact's path
// in dir. The entry's kind and content are not inspected, and a dangling
// symlink counts as present.
func Present(dir string, a Artifact) (bool, error) {
	_, err := os.Lstat(a.Path(dir))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", a.Name(), err)
}
