package export

import (
	"fmt"
	"io"

	"github.com/tabstash/tabstash/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(workspace *internal.Workspace, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml, md)", format)
	}
}
