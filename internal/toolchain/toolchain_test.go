package toolchain

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"cmake version 3.28.3\n\nCMake suite maintained and supported by Kitware (kitware.com/cmake).\n", "3.28.3"},
		{"cmake3 version 3.17.5\n", "3.17.5"},
		{"cmake version 3.10\n", "3.10.0"},
		{"cmake version 4.0.0-rc1\n", "4.0.0-rc1"},
		{"Ubuntu clang-format version 18.1.3 (1ubuntu1)\n", "18.1.3"},
		{"clang-format version 17.0.6\n", "17.0.6"},
	}

	for _, tt := range tests {
		v, err := ParseVersion(tt.output)
		if err != nil {
			t.Errorf("ParseVersion(%q) error: %v", firstLine(tt.output), err)
			continue
		}
		if got := v.String(); got != tt.want {
			t.Errorf("ParseVersion(%q) = %s, want %s", firstLine(tt.output), got, tt.want)
		}
	}
}

func TestParseVersion_NoVersion(t *testing.T) {
	if _, err := ParseVersion("command not understood\n"); err == nil {
		t.Error("expected error when output has no version")
	}
}

func TestMeetsMinimum(t *testing.T) {
	minimum := semver.MustParse("3.10")
	tests := []struct {
		version string
		want    bool
	}{
		{"3.10.0", true},
		{"3.10.2", true},
		{"3.28.3", true},
		{"4.0.0", true},
		{"3.9.6", false},
		{"2.8.12", false},
	}

	for _, tt := range tests {
		if got := MeetsMinimum(semver.MustParse(tt.version), minimum); got != tt.want {
			t.Errorf("MeetsMinimum(%s) = %v, want %v", tt.version, got, tt.want)
		}
	}
}

func TestCheckTools(t *testing.T) {
	t.Run("cmake new enough, clang-format missing", func(t *testing.T) {
		d := fakeDoctor(map[string]string{"cmake": "cmake version 3.28.3\n"})
		var buf bytes.Buffer
		d.CheckTools(context.Background(), &buf)

		out := buf.String()
		assertContains(t, out, "[ OK ] cmake found at /usr/bin/cmake")
		assertContains(t, out, "[ OK ] cmake 3.28.3 satisfies cmake_minimum_required(VERSION 3.10)")
		assertContains(t, out, "[MISS] clang-format not found")
	})

	t.Run("cmake too old", func(t *testing.T) {
		d := fakeDoctor(map[string]string{
			"cmake":        "cmake version 3.5.1\n",
			"clang-format": "clang-format version 14.0.0\n",
		})
		var buf bytes.Buffer
		d.CheckTools(context.Background(), &buf)

		assertContains(t, buf.String(), "[WARN] cmake 3.5.1 is older than 3.10")
		assertContains(t, buf.String(), "[ OK ] clang-format found at /usr/bin/clang-format")
	})

	t.Run("version command fails", func(t *testing.T) {
		d := fakeDoctor(map[string]string{"cmake": ""})
		d.Output = func(context.Context, string, ...string) ([]byte, error) {
			return nil, errors.New("exit status 1")
		}
		var buf bytes.Buffer
		d.CheckTools(context.Background(), &buf)

		assertContains(t, buf.String(), "[WARN] cmake --version failed: exit status 1")
	})
}

func TestCheckProject(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.cpp"), []byte("int main(){}"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "build"), 0755); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	CheckProject(&buf, dir)
	out := buf.String()

	assertContains(t, out, "[MISS] .clang-format does not exist")
	assertContains(t, out, "[ OK ] main.cpp exists")
	assertContains(t, out, "[MISS] CMakeLists.txt does not exist")
	assertContains(t, out, "[ OK ] build exists")

	// Diagnostics never create anything.
	if _, err := os.Stat(filepath.Join(dir, ".clang-format")); !os.IsNotExist(err) {
		t.Error("CheckProject created .clang-format")
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

// fakeDoctor resolves each tool in outputs to /usr/bin/<name> and returns the
// mapped output for "--version".
func fakeDoctor(outputs map[string]string) *Doctor {
	return &Doctor{
		LookPath: func(file string) (string, error) {
			if _, ok := outputs[file]; ok {
				return "/usr/bin/" + file, nil
			}
			return "", errors.New("executable file not found in $PATH")
		},
		Output: func(_ context.Context, name string, _ ...string) ([]byte, error) {
			return []byte(outputs[filepath.Base(name)]), nil
		},
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("output does not contain %q\n--- output ---\n%s", substr, content)
	}
}
