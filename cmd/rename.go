package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// renameCmd represents the rename command
var renameCmd = &cobra.Command{
	Use:   "rename <old-name> <new-name>",
	Short: "Rename a saved workspace",
	Long: `Rename a saved workspace. Fails if the target name is already taken.
If the renamed workspace was current, the current marker follows it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldName, newName := args[0], args[1]

		manager, _, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := manager.Rename(oldName, newName); err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Renamed workspace %q to %q\n", oldName, newName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
