package cmd

import (
	"fmt"

	"github.com/mediscan/appshell/internal/hostenv"
	"github.com/mediscan/appshell/internal/installprompt"
	"github.com/spf13/cobra"
)

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Show the native install prompt, if the host has offered one",
	Long: `Trigger the native "add to home screen" install dialog.

The dialog can only be shown while the host has a pending install offer;
without one this reports that nothing is available, which is a normal
result rather than an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		env := hostenv.New(runtimeDir(cfg))
		ctrl := installprompt.New(env)

		w, err := hostenv.NewWatcher(env, ctrl)
		if err != nil {
			return fmt.Errorf("failed to watch runtime directory: %w", err)
		}
		if err := w.Start(); err != nil {
			return fmt.Errorf("failed to watch runtime directory: %w", err)
		}
		defer w.Stop()

		styles := stylesFromConfig(cfg.Theme)
		out := cmd.OutOrStdout()

		switch ctrl.Trigger(cmd.Context()) {
		case installprompt.OutcomeAccepted:
			fmt.Fprintln(out, styles.Success.Render("Install accepted."))
		case installprompt.OutcomeDismissed:
			fmt.Fprintln(out, styles.Warning.Render("Install dismissed."))
		default:
			if ctrl.Installed() {
				fmt.Fprintln(out, styles.Muted.Render("Already installed."))
			} else {
				fmt.Fprintln(out, styles.Muted.Render("No install offer available."))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
