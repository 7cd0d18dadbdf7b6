// internal/cli/detect.go
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/orange-update/orange/pkg/core"
	"github.com/orange-update/orange/pkg/platform"
)

var detectQuick bool

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show which package managers are available",
	Long: `Probe the system for every supported package manager and, for each one
found, count installed and upgradable packages.`,
	Args: cobra.NoArgs,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().BoolVarP(&detectQuick, "quick", "q", false, "skip package counts")
}

func runDetect(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	fmt.Printf("System: %s\n\n", platform.ReadOSRelease())
	fmt.Println("Package managers:")
	for _, d := range manager.Detect() {
		if d.Available {
			fmt.Printf("  %s %-8s (%s)\n", color.GreenString("✓"), d.Name, d.Command)
		} else {
			fmt.Printf("  %s %-8s (%s not found)\n", color.RedString("✗"), d.Name, d.Command)
		}
	}

	backends := manager.Backends()
	if len(backends) == 0 {
		fmt.Println("\nNo supported package manager found.")
		return nil
	}
	if detectQuick {
		return nil
	}

	fmt.Println()
	for _, pm := range backends {
		qctx, status := core.WithQueryStatus(ctx)
		counts := withSpinner(fmt.Sprintf("Querying %s", pm.Name()), false, func() [2]int {
			return [2]int{len(pm.ListInstalled(qctx)), len(pm.ListUpgradable(qctx))}
		})
		if res, failed := status.Failed(); failed {
			fmt.Printf("%-8s %s\n", pm.Name(), color.YellowString("query failed (exit %d)", res.ExitCode))
			continue
		}
		fmt.Printf("%-8s %5d installed, %d upgradable\n", pm.Name(), counts[0], counts[1])
	}

	if err := selectBackend(); err == nil {
		fmt.Printf("\nDefault backend: %s\n", manager.Backend())
	}
	return nil
}
