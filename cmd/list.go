package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	currentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved workspaces",
	Long:  `List all saved workspaces, most recently modified first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, _, cleanup, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		workspaces, err := manager.List()
		if err != nil {
			return fmt.Errorf("failed to list workspaces: %w", err)
		}
		current, hasCurrent, err := manager.CurrentName()
		if err != nil {
			return fmt.Errorf("failed to resolve current workspace: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(workspaces) == 0 {
			fmt.Fprintln(out, "No saved workspaces. Use 'tabstash save <name>' to create one.")
			return nil
		}

		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Workspaces (%d)", len(workspaces))))

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, ws := range workspaces {
			marker := " "
			name := nameStyle.Render(ws.Name)
			if hasCurrent && ws.Name == current {
				marker = currentStyle.Render("*")
				name = currentStyle.Render(ws.Name)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				marker,
				name,
				countStyle.Render(fmt.Sprintf("%d tabs", len(ws.Tabs))),
				dateStyle.Render(ws.LastModified.Local().Format("2006-01-02 15:04")),
			)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if hasCurrent {
			fmt.Fprintln(out, dateStyle.Render("* current workspace"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
