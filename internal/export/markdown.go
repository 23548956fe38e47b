package export

import (
	"fmt"
	"io"
	"time"

	"github.com/tabstash/tabstash/internal"
)

// MarkdownExporter exports workspaces as a human-readable document
type MarkdownExporter struct{}

// Export exports a workspace to Markdown format
func (e *MarkdownExporter) Export(workspace *internal.Workspace, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# %s\n\n", workspace.Name); err != nil {
		return err
	}
	if !workspace.CreatedAt.IsZero() {
		fmt.Fprintf(w, "- Created: %s\n", workspace.CreatedAt.Format(time.RFC3339))
	}
	if !workspace.LastModified.IsZero() {
		fmt.Fprintf(w, "- Last modified: %s\n", workspace.LastModified.Format(time.RFC3339))
	}
	fmt.Fprintf(w, "- Tabs: %d\n\n", len(workspace.Tabs))

	for _, tab := range workspace.Tabs {
		if _, err := fmt.Fprintf(w, "1. `%s`\n", tab); err != nil {
			return err
		}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
