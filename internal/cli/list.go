// internal/cli/list.go
package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/orange-update/orange/pkg/core"
)

var listUpgradable bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed or upgradable packages",
	Long:  `List packages installed through the selected backend, or with --upgradable those that have a newer version available.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listUpgradable, "upgradable", "u", false, "list only packages with pending updates")
}

func runList(cmd *cobra.Command, _ []string) error {
	if err := selectBackend(); err != nil {
		return err
	}

	ctx := cmd.Context()
	type listed struct {
		pkgs []core.Package
		err  error
	}
	out := withSpinner("Listing packages", false, func() listed {
		if listUpgradable {
			pkgs, err := manager.ListUpgradable(ctx)
			return listed{pkgs, err}
		}
		pkgs, err := manager.ListInstalled(ctx)
		return listed{pkgs, err}
	})
	if out.err != nil {
		return out.err
	}
	pkgs := out.pkgs

	if listUpgradable {
		if len(pkgs) == 0 {
			fmt.Println("All packages are up to date")
			return nil
		}
		printUpgradable(os.Stdout, pkgs)
		return nil
	}

	printPackages(os.Stdout, pkgs)
	fmt.Printf("\n%d packages (%s)\n", len(pkgs), manager.Backend())
	return nil
}

func printPackages(w io.Writer, pkgs []core.Package) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVERSION\tDESCRIPTION")
	for _, p := range pkgs {
		desc := p.Description
		if p.AppID != "" {
			desc = p.AppID
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.Version, desc)
	}
	tw.Flush()
}

func printUpgradable(w io.Writer, pkgs []core.Package) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCURRENT\tAVAILABLE")
	for _, p := range pkgs {
		current := p.CurrentVersion
		if current == "" {
			current = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, current, p.NewVersion)
	}
	tw.Flush()
}
