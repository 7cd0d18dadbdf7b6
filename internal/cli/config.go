// internal/cli/config.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/orange-update/orange/pkg/core"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(config)
	},
}

var configSetDefaultCmd = &cobra.Command{
	Use:   "set-default BACKEND",
	Short: "Store the backend selected when --backend is not given",
	Long: `Store the default backend in the configuration file.

Examples:
  orange config set-default flatpak
  orange config set-default ""   # first detected backend`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := setDefaultBackend(cfgFile, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Default backend set to %q in %s\n", args[0], path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetDefaultCmd)
}

// setDefaultBackend rewrites only default_backend in the file at path,
// leaving flag and environment overrides out of it
func setDefaultBackend(path, name string) (string, error) {
	if name != "" {
		if _, ok := core.ParseKind(name); !ok {
			return "", fmt.Errorf("unknown backend %q (want apt, dnf, pacman, flatpak or snap)", name)
		}
	}

	if path == "" {
		p, err := core.DefaultConfigPath()
		if err != nil {
			return "", fmt.Errorf("locating config: %w", err)
		}
		path = p
	}

	stored, err := core.LoadConfig(path)
	if err != nil {
		return "", err
	}
	stored.DefaultBackend = name

	if err := core.SaveConfig(stored, path); err != nil {
		return "", err
	}
	return path, nil
}
