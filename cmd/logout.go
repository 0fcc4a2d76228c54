package cmd

import (
	"fmt"

	"github.com/mediscan/appshell/internal/authboot"
	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the cached credential session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := authboot.NewStore(cfg.SessionPath()).Clear(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
