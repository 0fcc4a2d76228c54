package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mediscan/appshell/internal/hostenv"
	"github.com/mediscan/appshell/internal/installprompt"
	"github.com/mediscan/appshell/internal/logging"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Watch the host runtime and report install availability changes",
	Long: `Run the shell loop: watch the webview runtime directory and print a
line whenever install availability changes. Stops on SIGINT/SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		env := hostenv.New(runtimeDir(cfg))
		ctrl := installprompt.New(env)

		changes, unsubscribe := ctrl.Subscribe()
		defer unsubscribe()

		w, err := hostenv.NewWatcher(env, ctrl)
		if err != nil {
			return fmt.Errorf("failed to watch runtime directory: %w", err)
		}
		if err := w.Start(); err != nil {
			return fmt.Errorf("failed to watch runtime directory: %w", err)
		}
		defer w.Stop()

		logging.Infof("watching %s", env.RuntimeDir())
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "installation: %s\n", ctrl.InstallationState())

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		for {
			select {
			case <-changes:
				fmt.Fprintf(out, "installation: %s\n", ctrl.InstallationState())
			case sig := <-sigCh:
				logging.Infof("received %v, shutting down", sig)
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
