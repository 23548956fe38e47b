package export

import (
	"encoding/json"
	"io"

	"github.com/tabstash/tabstash/internal"
)

// JSONExporter exports workspaces as pretty-printed JSON
type JSONExporter struct{}

// Export exports a workspace to JSON format
func (e *JSONExporter) Export(workspace *internal.Workspace, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(workspace)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
