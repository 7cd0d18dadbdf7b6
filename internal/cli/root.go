// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/orange-update/orange"
	"github.com/orange-update/orange/internal/logger"
	"github.com/orange-update/orange/pkg/core"
	"github.com/orange-update/orange/pkg/executor"
)

var (
	cfgFile     string
	backendName string
	debug       bool
	timeout     time.Duration
	elevate     string

	config  *core.Config
	log     *zap.SugaredLogger
	runner  *executor.Executor
	manager *orange.Manager
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "orange",
	Short: "Unified front-end for native package managers",
	Long: `orange - one interface over APT, DNF, Pacman, Flatpak and Snap.

Detects the package managers installed on this system and drives them
through their own command-line tools.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute executes the root command. Interrupts cancel the running command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %s", orange.Message(err)))
	}
	if log != nil {
		_ = log.Sync()
	}
	return err
}

// ExitCode maps an Execute error to the process exit status. Command
// failures keep the native tool's status.
func ExitCode(err error) int {
	return orange.ExitCode(err)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/orange/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "", "backend to use (apt, dnf, pacman, flatpak, snap)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", core.DefaultTimeout, "ceiling for one native command")
	rootCmd.PersistentFlags().StringVar(&elevate, "elevate", "", "privilege elevation: auto, pkexec, sudo or none")

	// Add commands
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	// Override config with flags
	flags := cmd.Flags()
	if backendName != "" {
		config.DefaultBackend = backendName
	}
	if debug {
		config.Debug = true
	}
	if flags.Changed("timeout") {
		config.Timeout = timeout
	}
	if elevate != "" {
		config.Elevation = elevate
	}

	log, err = logger.New(config.Debug)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	mode, err := executor.ParseElevationMode(config.Elevation)
	if err != nil {
		return err
	}
	runner = executor.New(
		executor.WithTimeout(config.Timeout),
		executor.WithElevation(mode),
		executor.WithLogger(log),
	)

	manager, err = orange.New(config, orange.WithRunner(runner), orange.WithLogger(log))
	return err
}

// selectBackend selects --backend strictly, otherwise the configured or
// first detected backend
func selectBackend() error {
	if backendName != "" {
		return manager.Select(backendName)
	}
	return manager.SelectDefault()
}
