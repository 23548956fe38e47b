package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Styles for show command
	showHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	showMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	showTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the tabs of a saved workspace",
	Long:  `Display a saved workspace's tab list in restore order.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, _, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ws, err := manager.Get(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, showHeaderStyle.Render(ws.Name))
		fmt.Fprintln(out, showMetaStyle.Render(fmt.Sprintf("created %s, modified %s, %d tabs",
			ws.CreatedAt.Local().Format("2006-01-02 15:04"),
			ws.LastModified.Local().Format("2006-01-02 15:04"),
			len(ws.Tabs))))

		for i, tab := range ws.Tabs {
			fmt.Fprintf(out, "%3d. %s\n", i+1, showTabStyle.Render(tab))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
