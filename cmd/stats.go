package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	statsLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	statsValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store statistics",
	Long:  `Show workspace and tab counts, the current workspace, and whether a previous tab set is available.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, _, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		stats, err := manager.Statistics()
		if err != nil {
			return fmt.Errorf("failed to read statistics: %w", err)
		}

		out := cmd.OutOrStdout()
		line := func(label, value string) {
			fmt.Fprintf(out, "%s %s\n", statsLabelStyle.Render(label+":"), statsValueStyle.Render(value))
		}

		line("Workspaces", fmt.Sprintf("%d", stats.Workspaces))
		line("Saved tabs", fmt.Sprintf("%d", stats.Tabs))
		current := "none"
		if stats.Current != "" {
			current = stats.Current
		}
		line("Current", current)
		previous := "empty"
		if stats.HasPrevious {
			previous = "available"
		}
		line("Previous slot", previous)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
