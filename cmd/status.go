package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/mediscan/appshell/internal/authboot"
	"github.com/mediscan/appshell/internal/hostenv"
	"github.com/mediscan/appshell/internal/installprompt"
	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show installation, platform, locale and auth state",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		env := hostenv.New(runtimeDir(cfg))
		ctrl := installprompt.New(env)

		// A short-lived watcher replays any marker already on disk so the
		// reported state includes pending offers.
		if w, err := hostenv.NewWatcher(env, ctrl); err == nil {
			if err := w.Start(); err == nil {
				defer w.Stop()
			}
		}

		styles := stylesFromConfig(cfg.Theme)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, styles.Title.Render("MediScan shell"))
		fmt.Fprintf(out, "%s %s\n", styles.Label.Render("Platform:"), env.Platform())
		fmt.Fprintf(out, "%s %v\n", styles.Label.Render("Install flow supported:"), ctrl.SupportedPlatform())
		fmt.Fprintf(out, "%s %s\n", styles.Label.Render("Installation:"), ctrl.InstallationState())
		fmt.Fprintf(out, "%s %s\n", styles.Label.Render("Locale:"), cfg.Locale)
		fmt.Fprintf(out, "%s %s\n", styles.Label.Render("Theme:"), cfg.Theme)

		sess, err := authboot.Bootstrap(context.Background(), authboot.NewStore(cfg.SessionPath()), nil)
		switch {
		case err == nil:
			fmt.Fprintf(out, "%s signed in as %s\n", styles.Label.Render("Auth:"), sess.Email)
		case errors.Is(err, authboot.ErrSessionExpired):
			fmt.Fprintf(out, "%s session expired\n", styles.Label.Render("Auth:"))
		default:
			fmt.Fprintf(out, "%s signed out\n", styles.Label.Render("Auth:"))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
