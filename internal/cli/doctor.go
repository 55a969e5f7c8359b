package cli

import (
	"fmt"

	"github.com/cplate-dev/cplate/internal/config"
	"github.com/cplate-dev/cplate/internal/toolchain"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the C++ toolchain and project files",
		Long: `Run read-only diagnostics: look for cmake and clang-format on PATH, check that
cmake satisfies the generated CMakeLists.txt, validate the settings file, and
list which project files exist in the target directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if dir == "" {
				dir = config.Get(config.KeyDir)
			}
			target, err := resolveTargetDir(dir)
			if err != nil {
				return err
			}

			toolchain.NewDoctor().Check(cmd.Context(), out, target)

			fmt.Fprintln(out, "Settings check:")
			if err := config.CheckFile(config.FilePath()); err != nil {
				fmt.Fprintf(out, "  [FAIL] %v\n", err)
			} else {
				fmt.Fprintf(out, "  [ OK ] %s\n", config.FilePath())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Target directory (default: current directory)")
	return cmd
}
