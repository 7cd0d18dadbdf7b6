// internal/cli/upgrade.go
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/orange-update/orange/pkg/core"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade [package]",
	Short: "Upgrade one package, or everything",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runEach(cmd.Context(), "Upgrading", "upgraded", args, manager.Upgrade)
		}
		return runOne(cmd.Context(), "Upgrading all packages", "System upgraded", func(ctx context.Context) (core.CommandResult, error) {
			return manager.Upgrade(ctx, "")
		})
	},
}

var refreshCmd = &cobra.Command{
	Use:     "refresh",
	Aliases: []string{"update"},
	Short:   "Refresh the package index",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runOne(cmd.Context(), "Refreshing package index", "Package index refreshed", manager.RefreshIndex)
	},
}
