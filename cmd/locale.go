package cmd

import (
	"fmt"

	"github.com/mediscan/appshell/internal/config"
	"github.com/mediscan/appshell/internal/locale"
	"github.com/spf13/cobra"
)

// localeCmd represents the locale command
var localeCmd = &cobra.Command{
	Use:   "locale [tag]",
	Short: "Show or set the active locale",
	Long: `Show the active locale and available catalogs, or set the active
locale by tag (e.g. "en", "pt-BR"). Setting a tag without a loaded
catalog is allowed; its strings fall back to the default locale.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		bundle, err := locale.LoadDir(cfg.LocaleDir(), config.DefaultLocale)
		if err != nil {
			return fmt.Errorf("failed to load locale catalogs: %w", err)
		}

		out := cmd.OutOrStdout()
		styles := stylesFromConfig(cfg.Theme)

		if len(args) == 1 {
			cfg.Locale = args[0]
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			if !bundle.Has(args[0]) {
				fmt.Fprintln(out, styles.Warning.Render(
					fmt.Sprintf("No catalog loaded for %q; strings fall back to %s.", args[0], config.DefaultLocale)))
			}
			fmt.Fprintf(out, "Locale set to %s\n", args[0])
			return nil
		}

		fmt.Fprintf(out, "%s %s\n", styles.Label.Render("Active locale:"), cfg.Locale)
		tags := bundle.Locales()
		if len(tags) == 0 {
			fmt.Fprintln(out, styles.Muted.Render("No catalogs installed."))
			return nil
		}
		fmt.Fprintf(out, "%s\n", styles.Label.Render("Available catalogs:"))
		for _, tag := range tags {
			marker := " "
			if tag == cfg.Locale {
				marker = "*"
			}
			fmt.Fprintf(out, "  %s %s\n", marker, tag)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(localeCmd)
}
