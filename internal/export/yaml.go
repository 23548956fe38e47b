package export

import (
	"io"

	"github.com/tabstash/tabstash/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports workspaces in YAML format
type YAMLExporter struct{}

// Export exports a workspace to YAML format
func (e *YAMLExporter) Export(workspace *internal.Workspace, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(workspace)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
