package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// previousCmd represents the previous command
var previousCmd = &cobra.Command{
	Use:   "previous",
	Short: "Restore the tab set auto-saved before the last load",
	Long: `Bring back the tab set that was open before the last load. The slot's
tab list is materialized as a new named workspace, loaded, and the slot is
emptied - restoring works exactly once per auto-save.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, _, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		name, res, err := manager.RestorePrevious(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Restored previous tab set as %q: %d opened, %d skipped\n",
			name, res.Opened, res.Skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previousCmd)
}
