package internal

import (
	"context"
	"os"
	"time"
)

// memoryStorage is an in-memory StateStorage for engine tests.
type memoryStorage struct {
	state  StoreState
	writes int
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{}
}

func (m *memoryStorage) ReadState() (*StoreState, error) {
	state := m.state
	state.Workspaces = append([]Workspace(nil), m.state.Workspaces...)
	if m.state.PreviousWorkspace != nil {
		prev := *m.state.PreviousWorkspace
		state.PreviousWorkspace = &prev
	}
	return &state, nil
}

func (m *memoryStorage) WriteState(state *StoreState) error {
	m.state = *state
	m.state.Workspaces = append([]Workspace(nil), state.Workspaces...)
	if state.PreviousWorkspace != nil {
		prev := *state.PreviousWorkspace
		m.state.PreviousWorkspace = &prev
	}
	m.writes++
	return nil
}

// fakeHost records every host call and answers from scripted state.
type fakeHost struct {
	panes    []Pane
	existing map[string]bool
	openErr  map[string]error
	listErr  error
	closeErr error

	closedBatches [][]Pane
	closedForce   []bool
	shown         []fakeShow
	diffs         []fakeDiff
}

type fakeShow struct {
	URI  string
	Opts ShowOptions
}

type fakeDiff struct {
	Original string
	Modified string
	Label    string
	Opts     DiffOptions
}

func newFakeHost(panes ...Pane) *fakeHost {
	return &fakeHost{
		panes:    panes,
		existing: make(map[string]bool),
		openErr:  make(map[string]error),
	}
}

func (h *fakeHost) ListOpenPanes(ctx context.Context) ([]Pane, error) {
	if h.listErr != nil {
		return nil, h.listErr
	}
	return append([]Pane(nil), h.panes...), nil
}

func (h *fakeHost) ClosePanes(ctx context.Context, panes []Pane, force bool) error {
	if h.closeErr != nil {
		return h.closeErr
	}
	h.closedBatches = append(h.closedBatches, panes)
	h.closedForce = append(h.closedForce, force)
	h.panes = nil
	return nil
}

func (h *fakeHost) OpenDocument(ctx context.Context, uri string) (DocumentHandle, error) {
	if err := h.openErr[uri]; err != nil {
		return DocumentHandle{}, err
	}
	return DocumentHandle{URI: uri}, nil
}

func (h *fakeHost) ShowDocument(ctx context.Context, handle DocumentHandle, opts ShowOptions) error {
	h.shown = append(h.shown, fakeShow{URI: handle.URI, Opts: opts})
	return nil
}

func (h *fakeHost) OpenDiff(ctx context.Context, original, modified, label string, opts DiffOptions) error {
	if err := h.openErr[modified]; err != nil {
		return err
	}
	h.diffs = append(h.diffs, fakeDiff{Original: original, Modified: modified, Label: label, Opts: opts})
	return nil
}

func (h *fakeHost) StatResource(ctx context.Context, uri string) error {
	if h.existing[uri] {
		return nil
	}
	return os.ErrNotExist
}

// shownURIs returns the URIs shown without focus, in order.
func (h *fakeHost) shownURIs() []string {
	var uris []string
	for _, s := range h.shown {
		if !s.Opts.Focus {
			uris = append(uris, s.URI)
		}
	}
	return uris
}

// testDelays keep executor tests fast without hitting the zero-means-default
// rule.
var testDelays = Delays{CloseSettle: time.Millisecond, OpenPacing: time.Millisecond}

// newTestManager wires a Manager over in-memory storage and a fake host.
func newTestManager(host *fakeHost) (*Manager, *memoryStorage) {
	storage := newMemoryStorage()
	reopener := NewReopener(host, testDelays)
	return NewManager(storage, host, reopener, "file"), storage
}

// docPane builds a document pane for tests.
func docPane(uri string, column int) Pane {
	return Pane{Kind: PaneDocument, URI: uri, Label: uriPath(uri), ViewColumn: column}
}

// CreateTestWorkspace builds a workspace fixture with the given tabs.
func CreateTestWorkspace(name string, tabs ...string) Workspace {
	now := time.Now().UTC()
	return Workspace{Name: name, Tabs: tabs, CreatedAt: now, LastModified: now}
}
