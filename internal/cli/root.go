package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cplate-dev/cplate/internal/branding"
	"github.com/cplate-dev/cplate/internal/config"
	"github.com/cplate-dev/cplate/internal/prompt"
	"github.com/cplate-dev/cplate/internal/report"
	"github.com/cplate-dev/cplate/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// ErrNotDirectory is returned when the target path exists but is not a
// directory.
var ErrNotDirectory = errors.New("not a directory")

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` makes sure a directory holds the boilerplate of a CMake C++ project:
.clang-format, main.cpp, CMakeLists.txt and a build/ directory.

Each missing file is created only after you answer y at the prompt. Files that
already exist are never touched. The build directory is created without asking.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.BindFlag(config.KeyDir, cmd.Flags().Lookup("dir")); err != nil {
				return err
			}
			if err := config.BindFlag(config.KeyAssumeYes, cmd.Flags().Lookup("yes")); err != nil {
				return err
			}
			return runScaffold(cmd)
		},
	}

	cmd.Flags().String("dir", "", "Target directory (default: current directory)")
	cmd.Flags().BoolP("yes", "y", false, "Create missing files without asking")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return NewRootCmd().ExecuteContext(context.Background())
}

func runScaffold(cmd *cobra.Command) error {
	if err := config.CheckFile(config.FilePath()); err != nil {
		return err
	}

	dir, err := resolveTargetDir(config.Get(config.KeyDir))
	if err != nil {
		return err
	}

	mode, err := report.ParseColorMode(config.Get(config.KeyColor))
	if err != nil {
		return err
	}

	s := scaffold.New(dir,
		scaffold.WithReporter(report.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)),
		scaffold.WithConfirmer(prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())),
		scaffold.WithAssumeYes(config.GetBool(config.KeyAssumeYes)),
	)

	// Per-artifact failures are reported as they happen and do not change
	// the exit status.
	s.Run()
	return nil
}

// resolveTargetDir returns the absolute target directory. An empty dir means
// the current working directory. The directory must already exist.
func resolveTargetDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("target directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("target %s: %w", abs, ErrNotDirectory)
	}
	return abs, nil
}
