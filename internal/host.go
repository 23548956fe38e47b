package internal

import "context"

// Pane is one live editor surface as reported by the host, carrying the
// same discriminated shape as TabDescriptor plus placement flags.
type Pane struct {
	Kind        PaneKind `json:"kind"`
	URI         string   `json:"uri,omitempty"`
	OriginalURI string   `json:"originalUri,omitempty"`
	ModifiedURI string   `json:"modifiedUri,omitempty"`
	ViewType    string   `json:"viewType,omitempty"`
	Label       string   `json:"label,omitempty"`
	Active      bool     `json:"isActive,omitempty"`
	Pinned      bool     `json:"isPinned,omitempty"`
	ViewColumn  int      `json:"viewColumn,omitempty"`
}

// DocumentHandle identifies a document the host has opened.
type DocumentHandle struct {
	URI string
}

// ShowOptions control how an opened document is surfaced.
type ShowOptions struct {
	ViewColumn int
	Preview    bool
	Focus      bool
}

// DiffOptions control how a comparison pane is surfaced.
type DiffOptions struct {
	ViewColumn int
	Preview    bool
}

// Host is the editor capability surface the engine consumes. Every call is
// a suspension point; none of them is assumed to complete synchronously
// with the editor's own tab state, which is why the executor paces itself
// between calls.
type Host interface {
	// ListOpenPanes returns the live pane set in host order.
	ListOpenPanes(ctx context.Context) ([]Pane, error)

	// ClosePanes closes the given panes as a single batch operation.
	ClosePanes(ctx context.Context, panes []Pane, force bool) error

	// OpenDocument loads a resource as a text document. Fails for missing,
	// unreadable or binary resources.
	OpenDocument(ctx context.Context, uri string) (DocumentHandle, error)

	// ShowDocument surfaces an opened document in an editor column.
	ShowDocument(ctx context.Context, handle DocumentHandle, opts ShowOptions) error

	// OpenDiff surfaces a comparison pane for two resources.
	OpenDiff(ctx context.Context, original, modified, label string, opts DiffOptions) error

	// StatResource probes a resource for existence, failing if absent.
	StatResource(ctx context.Context, uri string) error
}
