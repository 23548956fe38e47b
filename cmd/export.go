package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tabstash/tabstash/internal"
	"github.com/tabstash/tabstash/internal/export"
)

var (
	exportFormat string
	exportDir    string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Export saved workspaces to file",
	Long: `Export saved workspaces in various formats (json, yaml, md).

Without a name, every workspace is exported to --output as one file per
workspace. With a name, that workspace is written to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, _, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			ws, err := manager.Get(args[0])
			if err != nil {
				return err
			}
			return exporter.Export(ws, cmd.OutOrStdout())
		}

		workspaces, err := manager.List()
		if err != nil {
			return fmt.Errorf("failed to list workspaces: %w", err)
		}
		if len(workspaces) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No workspaces to export")
			return nil
		}

		if err := os.MkdirAll(exportDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		for i := range workspaces {
			ws := workspaces[i]
			path := filepath.Join(exportDir, fmt.Sprintf("%s.%s", ws.Name, exporter.Extension()))
			if err := exportWorkspace(exporter, &ws, path); err != nil {
				return err
			}
			internal.LogInfo("exported %s", path)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d workspaces to %s\n", len(workspaces), exportDir)
		return nil
	},
}

func exportWorkspace(exporter export.Exporter, ws *internal.Workspace, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := exporter.Export(ws, f); err != nil {
		return fmt.Errorf("failed to export %s: %w", ws.Name, err)
	}
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, yaml, md)")
	exportCmd.Flags().StringVarP(&exportDir, "output", "o", "tabstash-export", "Output directory when exporting all workspaces")
	rootCmd.AddCommand(exportCmd)
}
