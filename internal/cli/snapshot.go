// internal/cli/snapshot.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orange-update/orange/pkg/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export or inspect the installed package set",
	Long: `Record the packages installed through every available backend.

The file is YAML, compressed with xz for a .xz extension or zstd for .zst.`,
}

var snapshotExportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Write the installed package set to FILE",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		type taken struct {
			s   *snapshot.Snapshot
			err error
		}
		out := withSpinner("Collecting installed packages", false, func() taken {
			s, err := manager.Snapshot(cmd.Context())
			return taken{s, err}
		})
		if cmd.Context().Err() != nil {
			return cmd.Context().Err()
		}
		if err := snapshot.Write(args[0], out.s); err != nil {
			return err
		}

		fmt.Printf("Wrote %d packages from %d backends to %s\n", out.s.Count(), len(out.s.Backends), args[0])
		return out.err
	},
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := snapshot.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Host:    %s\n", s.Host)
		fmt.Printf("Created: %s\n", s.Created.Local().Format("2006-01-02 15:04:05"))
		for _, b := range s.Backends {
			fmt.Printf("\n%s (%d)\n", b.Name, len(b.Packages))
			printPackages(os.Stdout, b.Packages)
		}
		return nil
	},
}

func init() {
	snapshotCmd.AddCommand(snapshotExportCmd)
	snapshotCmd.AddCommand(snapshotShowCmd)
}
