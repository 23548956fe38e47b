package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tabstash/tabstash/internal"
)

var (
	verbose   bool
	statePath string
	panesPath string
	version   string = "dev"
	commit    string = "unknown"
	date      string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tabstash",
	Short: "Save, restore and sort editor tab sets",
	Long: `tabstash captures the set of documents open in an editor workspace,
persists it under a name, and restores it later: close everything, reopen
exactly the saved set, keep going when individual files have gone missing.

The editor side of the bridge writes its live tab list to a snapshot file
(--panes) before invoking tabstash, and applies the JSON-line operation
stream tabstash prints on stdout.

Quick Start:
  tabstash save work --panes tabs.json     # Snapshot the open tabs as "work"
  tabstash list                            # List saved workspaces
  tabstash load work --panes tabs.json     # Close everything, reopen "work"
  tabstash previous                        # Undo the last load
  tabstash sort --panes tabs.json          # Reorder open tabs by type/name`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
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
	rootCmd.PersistentFlags().StringVar(&statePath, "state", "", "Custom state database location")
	rootCmd.PersistentFlags().StringVar(&panesPath, "panes", "", "Pane snapshot file written by the editor bridge")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// openEngine wires the storage, bridge host and executor behind a Manager.
// The returned cleanup closes the state database.
func openEngine(cmd *cobra.Command) (*internal.Manager, internal.Config, func(), error) {
	paths, err := internal.GetStoragePaths(statePath)
	if err != nil {
		return nil, internal.Config{}, nil, fmt.Errorf("failed to resolve storage paths: %w", err)
	}

	cfg, err := internal.LoadConfig(paths.ConfigFile)
	if err != nil {
		return nil, internal.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := internal.OpenStateDB(paths.StateDB)
	if err != nil {
		return nil, internal.Config{}, nil, fmt.Errorf("failed to open state database: %w", err)
	}
	cleanup := func() {
		if err := db.Close(); err != nil {
			internal.LogWarn("failed to close state database: %v", err)
		}
	}

	host := internal.NewBridgeHost(panesPath, cmd.OutOrStdout())
	reopener := internal.NewReopener(host, cfg.Delays())
	manager := internal.NewManager(db, host, reopener, cfg.DocumentScheme)
	return manager, cfg, cleanup, nil
}
