// internal/cli/install.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/orange-update/orange"
	"github.com/orange-update/orange/pkg/core"
)

var installCmd = &cobra.Command{
	Use:   "install [package...]",
	Short: "Install one or more packages",
	Long: `Install packages using the selected or auto-detected backend.

Examples:
  orange install curl
  orange install firefox --backend=flatpak
  orange install git vim htop`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEach(cmd.Context(), "Installing", "installed", args, manager.Install)
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove [package...]",
	Aliases: []string{"uninstall"},
	Short:   "Remove one or more packages",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEach(cmd.Context(), "Removing", "removed", args, manager.Remove)
	},
}

type mutation func(ctx context.Context, target string) (core.CommandResult, error)

type outcome struct {
	res core.CommandResult
	err error
}

// runEach applies op to every package, continuing past failures. The last
// failure is returned so the exit status reflects it.
func runEach(ctx context.Context, verb, done string, pkgs []string, op mutation) error {
	if err := selectBackend(); err != nil {
		return err
	}
	fmt.Printf("Using backend: %s\n", manager.Backend())

	var last error
	for _, pkg := range pkgs {
		target := manager.Resolve(pkg)
		out := withSpinner(fmt.Sprintf("%s %s", verb, target), true, func() outcome {
			res, err := op(ctx, pkg)
			return outcome{res, err}
		})

		if out.err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %s\n", color.RedString("✗"), pkg, orange.Message(out.err))
			last = out.err
			continue
		}
		fmt.Printf("%s %s %s\n", color.GreenString("✓"), pkg, done)
	}

	return last
}

// runOne applies a single operation and reports it
func runOne(ctx context.Context, desc, done string, op func(context.Context) (core.CommandResult, error)) error {
	if err := selectBackend(); err != nil {
		return err
	}

	out := withSpinner(fmt.Sprintf("%s (%s)", desc, manager.Backend()), true, func() outcome {
		res, err := op(ctx)
		return outcome{res, err}
	})
	if out.err != nil {
		return out.err
	}

	if debug && out.res.Stdout != "" {
		fmt.Print(out.res.Stdout)
	}
	fmt.Printf("%s %s\n", color.GreenString("✓"), done)
	return nil
}
