package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mediscan/appshell/internal/chatcache"
	"github.com/mediscan/appshell/internal/export"
	"github.com/mediscan/appshell/internal/logging"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <session-id>",
	Short: "Export a cached conversation to file or stdout",
	Long: `Export a cached conversation in one of the supported formats
(jsonl, md, yaml, json).

Use 'appshell history list' to see available session IDs. Without
--output the transcript is written to stdout.`,
	Args: cobra.ExactArgs(1),
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

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		if exportOutput == "" {
			return exporter.Export(sess, cmd.OutOrStdout())
		}

		path := exportOutput
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, fmt.Sprintf("session_%s.%s", sess.ID, exporter.Extension()))
		}

		f, err := os.Create(path)
		if err != nil {
			return &export.Error{Format: exportFormat, Path: path, Err: err}
		}
		defer f.Close()

		if err := exporter.Export(sess, f); err != nil {
			return &export.Error{Format: exportFormat, Path: path, Err: err}
		}
		logging.Infof("exported session %s to %s", sess.ID, path)
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format: jsonl, md, yaml, json")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file or directory (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
