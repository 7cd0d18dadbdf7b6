// internal/cli/search.go
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/orange-update/orange/pkg/core"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the package index",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := selectBackend(); err != nil {
		return err
	}

	query := strings.Join(args, " ")
	type found struct {
		pkgs []core.Package
		err  error
	}
	out := withSpinner(fmt.Sprintf("Searching %s", manager.Backend()), false, func() found {
		pkgs, err := manager.Search(cmd.Context(), query)
		return found{pkgs, err}
	})
	if out.err != nil {
		return out.err
	}

	if len(out.pkgs) == 0 {
		fmt.Printf("No packages found for %q\n", query)
		return nil
	}
	printPackages(os.Stdout, out.pkgs)
	return nil
}
