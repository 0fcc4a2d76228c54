package cmd

import (
	"fmt"

	"github.com/mediscan/appshell/internal/theme"
	"github.com/spf13/cobra"
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme [mode]",
	Short: "Show or set the theme preference",
	Long:  `Show the active theme mode, or set it to system, light or dark.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(args) == 0 {
			styles := stylesFromConfig(cfg.Theme)
			fmt.Fprintf(out, "%s %s\n", styles.Label.Render("Theme:"), cfg.Theme)
			return nil
		}

		mode, err := theme.ParseMode(args[0])
		if err != nil {
			return err
		}
		cfg.Theme = string(mode)
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(out, "Theme set to %s\n", mode)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
