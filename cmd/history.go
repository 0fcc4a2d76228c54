package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/mediscan/appshell/internal/chatcache"
	"github.com/mediscan/appshell/internal/theme"
	"github.com/spf13/cobra"
)

var historyKeep int

// historyCmd represents the history command group
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the local chat-history cache",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached conversations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		store, err := chatcache.Open(cfg.ChatDBPath())
		if err != nil {
			return fmt.Errorf("failed to open chat cache: %w", err)
		}
		defer store.Close()

		summaries, err := store.ListSessions()
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		styles := stylesFromConfig(cfg.Theme)
		out := cmd.OutOrStdout()
		if len(summaries) == 0 {
			fmt.Fprintln(out, styles.Muted.Render("No cached conversations."))
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, styles.Header.Render("ID")+"\t"+styles.Header.Render("TITLE")+"\t"+styles.Header.Render("MSGS")+"\t"+styles.Header.Render("UPDATED"))
		for _, s := range summaries {
			title := s.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.ID, title, s.MessageCount, s.UpdatedAt)
		}
		return w.Flush()
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show one cached conversation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		store, err := chatcache.Open(cfg.ChatDBPath())
		if err != nil {
			return fmt.Errorf("failed to open chat cache: %w", err)
		}
		defer store.Close()

		sess, err := store.GetSession(args[0])
		if err != nil {
			return err
		}

		styles := stylesFromConfig(cfg.Theme)
		out := cmd.OutOrStdout()
		title := sess.Title
		if title == "" {
			title = sess.ID
		}
		fmt.Fprintln(out, styles.Title.Render(title))
		fmt.Fprintln(out, styles.Muted.Render(strings.Repeat("-", len(title))))
		for _, msg := range sess.Messages {
			fmt.Fprintf(out, "%s %s\n", styles.Label.Render(msg.Role+":"), msg.Content)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the chat-history cache, optionally keeping the newest sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		store, err := chatcache.Open(cfg.ChatDBPath())
		if err != nil {
			return fmt.Errorf("failed to open chat cache: %w", err)
		}
		defer store.Close()

		out := cmd.OutOrStdout()
		if historyKeep > 0 {
			removed, err := store.Prune(historyKeep)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Removed %d sessions, kept the newest %d.\n", removed, historyKeep)
			return nil
		}

		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Chat history cleared.")
		return nil
	},
}

// stylesFromConfig resolves the palette, falling back to system mode for
// unknown preference values.
func stylesFromConfig(pref string) theme.Styles {
	mode, err := theme.ParseMode(pref)
	if err != nil {
		mode = theme.ModeSystem
	}
	return theme.StylesFor(mode)
}

func init() {
	historyClearCmd.Flags().IntVar(&historyKeep, "keep", 0, "Keep the newest N sessions")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
