package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// saveCmd represents the save command
var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the open tab set as a named workspace",
	Long: `Capture the current tab set (from the --panes snapshot) and persist it
under the given name. Saving over an existing name replaces its tab list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		manager, _, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ws, err := manager.Save(cmd.Context(), name, false)
		if err != nil {
			return fmt.Errorf("failed to save workspace: %w", err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Saved workspace %q with %d tabs\n", ws.Name, len(ws.Tabs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}
