package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sortOrder string

// sortCmd represents the sort command
var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Reorder the open tabs by file type and name",
	Long: `Close the open tabs and reopen them ordered by file extension, ties
broken by file name. Extensions listed in the config's sortOrder (or the
--order flag) come first, in that order.

Emits the close/open operation stream on stdout for the editor bridge.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, cfg, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		order := cfg.SortOrder
		if sortOrder != "" {
			order = strings.Split(sortOrder, ",")
		}

		res, sorted, err := manager.SortLive(cmd.Context(), order)
		if err != nil {
			return fmt.Errorf("failed to sort tabs: %w", err)
		}
		if !sorted {
			fmt.Fprintln(cmd.ErrOrStderr(), "Nothing to sort")
			return nil
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Sorted tabs: %d opened, %d skipped\n", res.Opened, res.Skipped)
		return nil
	},
}

func init() {
	sortCmd.Flags().StringVar(&sortOrder, "order", "", "Comma-separated extension priority (e.g. \"md,go,ts\")")
	rootCmd.AddCommand(sortCmd)
}
