package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loadNoAutoSave bool

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Close all tabs and reopen a saved workspace",
	Long: `Close every open tab, then reopen the named workspace's tabs in their
saved order. Files that have gone missing or turned binary are skipped, not
fatal. Unless --no-autosave is given, the tab set open before the load is
stashed in the previous-workspace slot first ("tabstash previous" brings it
back).

Emits the close/open operation stream on stdout for the editor bridge.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		manager, _, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		res, err := manager.Load(cmd.Context(), name, !loadNoAutoSave)
		if err != nil {
			return fmt.Errorf("failed to load workspace: %w", err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Loaded %q: %d opened, %d skipped\n", name, res.Opened, res.Skipped)
		return nil
	},
}

func init() {
	loadCmd.Flags().BoolVar(&loadNoAutoSave, "no-autosave", false, "Do not stash the current tab set before loading")
	rootCmd.AddCommand(loadCmd)
}
