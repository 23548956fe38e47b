package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// BridgeHost implements Host for the companion CLI. The editor side of the
// bridge writes its live pane list to a snapshot file before invoking
// tabstash, and applies the JSON-line operation stream tabstash emits.
// Resource probes run directly against the local filesystem.
type BridgeHost struct {
	snapshotPath string
	enc          *json.Encoder
}

// paneSnapshot is the document the editor bridge writes.
type paneSnapshot struct {
	Panes []Pane `json:"panes"`
}

// bridgeOp is one line of the outgoing operation stream.
type bridgeOp struct {
	Op         string `json:"op"`
	URI        string `json:"uri,omitempty"`
	Original   string `json:"original,omitempty"`
	Modified   string `json:"modified,omitempty"`
	Label      string `json:"label,omitempty"`
	ViewColumn int    `json:"viewColumn,omitempty"`
	Count      int    `json:"count,omitempty"`
	Force      bool   `json:"force"`
	Preview    bool   `json:"preview"`
	Focus      bool   `json:"focus"`
}

// NewBridgeHost creates a bridge host. snapshotPath may be empty, in which
// case the live pane set reads as empty; out receives the operation stream.
func NewBridgeHost(snapshotPath string, out io.Writer) *BridgeHost {
	return &BridgeHost{snapshotPath: snapshotPath, enc: json.NewEncoder(out)}
}

// ListOpenPanes parses the snapshot file written by the editor bridge.
func (h *BridgeHost) ListOpenPanes(ctx context.Context) ([]Pane, error) {
	if h.snapshotPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(h.snapshotPath)
	if err != nil {
		return nil, &StorageError{Path: h.snapshotPath, Op: "read", Err: err}
	}
	var snapshot paneSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, &StorageError{Path: h.snapshotPath, Op: "parse", Err: err}
	}
	return snapshot.Panes, nil
}

// ClosePanes emits one closeAll operation for the whole batch.
func (h *BridgeHost) ClosePanes(ctx context.Context, panes []Pane, force bool) error {
	return h.enc.Encode(bridgeOp{Op: "closeAll", Count: len(panes), Force: force})
}

// OpenDocument verifies the resource is an openable text document. The
// actual open happens editor-side when the show operation is applied.
func (h *BridgeHost) OpenDocument(ctx context.Context, uri string) (DocumentHandle, error) {
	if err := h.StatResource(ctx, uri); err != nil {
		return DocumentHandle{}, err
	}
	if err := sniffBinary(uriPath(uri)); err != nil {
		return DocumentHandle{}, err
	}
	return DocumentHandle{URI: uri}, nil
}

// ShowDocument emits an open operation for the editor bridge.
func (h *BridgeHost) ShowDocument(ctx context.Context, handle DocumentHandle, opts ShowOptions) error {
	return h.enc.Encode(bridgeOp{
		Op:         "open",
		URI:        handle.URI,
		ViewColumn: opts.ViewColumn,
		Preview:    opts.Preview,
		Focus:      opts.Focus,
	})
}

// OpenDiff emits a diff operation for the editor bridge.
func (h *BridgeHost) OpenDiff(ctx context.Context, original, modified, label string, opts DiffOptions) error {
	return h.enc.Encode(bridgeOp{
		Op:         "diff",
		Original:   original,
		Modified:   modified,
		Label:      label,
		ViewColumn: opts.ViewColumn,
		Preview:    opts.Preview,
	})
}

// StatResource probes a file-scheme resource on the local filesystem.
func (h *BridgeHost) StatResource(ctx context.Context, uri string) error {
	if scheme := uriScheme(uri); scheme != "" && scheme != "file" {
		return fmt.Errorf("cannot stat %q: unsupported scheme %q", uri, scheme)
	}
	if _, err := os.Stat(uriPath(uri)); err != nil {
		return err
	}
	return nil
}

// sniffBinary rejects files that the editor would refuse to show as text.
// A NUL byte in the first 512 bytes is the same heuristic the host uses.
func sniffBinary(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return err
	}
	if bytes.IndexByte(buf[:n], 0) >= 0 {
		return fmt.Errorf("%s seems to be binary and cannot be opened as text", path)
	}
	return nil
}
