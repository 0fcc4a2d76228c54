package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mediscan/appshell/internal/config"
	"github.com/mediscan/appshell/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	homeDir  string
	version  string = "dev"
	commit   string = "unknown"
	date     string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "appshell",
	Short: "MediScan client shell",
	Long: `The MediScan client application shell.

appshell runs alongside the MediScan webview and owns the client-side
plumbing: the install-prompt lifecycle, the local chat-history cache,
localization catalogs, the theme preference and the auth bootstrap.

Quick Start:
  appshell run                  # Watch the host runtime and report install state
  appshell status               # Show installation, platform, locale and theme
  appshell install              # Show the native install prompt, if offered
  appshell history list         # List cached conversations

For detailed usage, see: https://github.com/mediscan/appshell`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "Custom appshell home directory (default ~/.mediscan)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadConfig loads the config honoring the --home flag.
func loadConfig() (*config.Config, error) {
	if homeDir != "" {
		return config.LoadFrom(filepath.Join(homeDir, "config.json"))
	}
	return config.Load()
}

// runtimeDir resolves the webview runtime directory for a config.
func runtimeDir(cfg *config.Config) string {
	if cfg.RuntimeDir != "" {
		return cfg.RuntimeDir
	}
	return filepath.Join(cfg.Home(), "runtime")
}
