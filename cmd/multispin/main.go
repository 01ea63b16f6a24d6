// Multispin is a terminal editor and toolbox for multi-section numeric
// values such as times, coordinates and color components.
//
// It hosts a multi-section spin box in an interactive terminal UI, replays
// key sequences headlessly for scripting, serves spin box sessions over
// WebSocket and formats or parses numbers the way the spin box does.
//
// Usage:
//
//	multispin [command] [flags]
//
// Running without arguments launches the interactive editor.
// See 'multispin --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/multispin/internal/config"
	"github.com/muurk/multispin/internal/logging"
	"github.com/muurk/multispin/internal/version"
)

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	logging.Sync()
	if err != nil {
		if !isReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// Global flags
var (
	logLevel   string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "multispin",
	Short: "Multi-section numeric spin box",
	Long: `An editor for values made of several numbers shown in one line of text,
such as "12:34:56", "52.5200° N  13.4050° E" or "120°  200  255".

Each section has its own range, precision, wrapping and prefix/suffix text.
The caret decides which section arrow keys and typing act on; Tab moves
between sections.

If no command is specified, the interactive editor will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Initialize(logLevel); err != nil {
			return err
		}
		if configPath != "" {
			config.SetConfigPath(configPath)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the editor when no subcommand provided
		return runEdit(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "multispin %s\n", version.Full())
	},
}
