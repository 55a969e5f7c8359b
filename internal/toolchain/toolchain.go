package toolchain

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/cplate-dev/cplate/internal/scaffold"
)

// versionTimeout bounds each external "--version" call.
const versionTimeout = 5 * time.Second

var versionPattern = regexp.MustCompile(`version\s+v?([0-9][0-9A-Za-z.+-]*)`)

// Doctor runs read-only diagnostics. LookPath and Output are replaceable so
// tests do not depend on the host's installed tools.
type Doctor struct {
	LookPath func(file string) (string, error)
	Output   func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewDoctor returns a Doctor using the real PATH and process execution.
func NewDoctor() *Doctor {
	return &Doctor{
		LookPath: exec.LookPath,
		Output: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
}

// ParseVersion extracts the semantic version from tool output such as
// "cmake version 3.28.3" or "Ubuntu clang-format version 18.1.3 (1ubuntu1)".
func ParseVersion(output string) (*semver.Version, error) {
	m := versionPattern.FindStringSubmatch(output)
	if m == nil {
		return nil, fmt.Errorf("no version found in %q", firstLine(output))
	}
	v, err := semver.NewVersion(m[1])
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", m[1], err)
	}
	return v, nil
}

// MeetsMinimum reports whether version is at least minimum.
func MeetsMinimum(version, minimum *semver.Version) bool {
	return !version.LessThan(minimum)
}

// Check writes the full diagnostic report for dir to w.
func (d *Doctor) Check(ctx context.Context, w io.Writer, dir string) {
	d.CheckTools(ctx, w)
	CheckProject(w, dir)
}

// CheckTools reports cmake and clang-format availability and versions.
func (d *Doctor) CheckTools(ctx context.Context, w io.Writer) {
	fmt.Fprintln(w, "Toolchain check:")
	minimum := semver.MustParse(scaffold.MinCMakeVersion)

	if v, ok := d.checkTool(ctx, w, "cmake"); ok {
		if MeetsMinimum(v, minimum) {
			fmt.Fprintf(w, "  [ OK ] cmake %s satisfies cmake_minimum_required(VERSION %s)\n", v, scaffold.MinCMakeVersion)
		} else {
			fmt.Fprintf(w, "  [WARN] cmake %s is older than %s required by CMakeLists.txt\n", v, scaffold.MinCMakeVersion)
		}
	}
	d.checkTool(ctx, w, "clang-format")
}

func (d *Doctor) checkTool(ctx context.Context, w io.Writer, name string) (*semver.Version, bool) {
	path, err := d.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return nil, false
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, path)

	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	out, err := d.Output(ctx, path, "--version")
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %s --version failed: %v\n", name, err)
		return nil, false
	}
	v, err := ParseVersion(string(out))
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %s: %v\n", name, err)
		return nil, false
	}
	return v, true
}

// CheckProject reports which scaffold artifacts exist in dir. It never
// creates anything.
func CheckProject(w io.Writer, dir string) {
	fmt.Fprintf(w, "Project check (%s):\n", dir)
	for _, a := range scaffold.Artifacts() {
		present, err := scaffold.Present(dir, a)
		switch {
		case err != nil:
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
		case present:
			fmt.Fprintf(w, "  [ OK ] %s exists\n", a)
		default:
			fmt.Fprintf(w, "  [MISS] %s does not exist\n", a)
		}
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
