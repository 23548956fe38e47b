package internal

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// StateStorage persists the whole workspace-store document. Every mutation
// in Manager is a read of the whole document, an in-memory change, and a
// write of the whole document back; there are no finer-grained updates.
type StateStorage interface {
	ReadState() (*StoreState, error)
	WriteState(state *StoreState) error
}

// Stats is the read-only summary returned by Statistics.
type Stats struct {
	Workspaces  int
	Tabs        int
	Current     string
	HasPrevious bool
}

// Manager owns the named-workspace collection and the current/previous
// slots. A single mutex serializes every operation end to end, so two
// callers can never interleave on the persisted document mid-flight.
type Manager struct {
	mu       sync.Mutex
	storage  StateStorage
	host     Host
	reopener *Reopener
	scheme   string
}

// NewManager wires a Manager over its storage, host and reopener. scheme is
// the resource scheme eligible for restore; "" means "file".
func NewManager(storage StateStorage, host Host, reopener *Reopener, scheme string) *Manager {
	if scheme == "" {
		scheme = "file"
	}
	return &Manager{storage: storage, host: host, reopener: reopener, scheme: scheme}
}

// List returns all named workspaces, most recently modified first.
func (m *Manager) List() ([]Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.storage.ReadState()
	if err != nil {
		return nil, err
	}
	workspaces := make([]Workspace, len(state.Workspaces))
	copy(workspaces, state.Workspaces)
	sort.SliceStable(workspaces, func(i, j int) bool {
		return workspaces[i].LastModified.After(workspaces[j].LastModified)
	})
	return workspaces, nil
}

// Get returns one workspace by name.
func (m *Manager) Get(name string) (*Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.storage.ReadState()
	if err != nil {
		return nil, err
	}
	i := state.find(name)
	if i < 0 {
		return nil, &NotFoundError{Name: name}
	}
	ws := state.Workspaces[i]
	return &ws, nil
}

// Save captures the live pane set under the given name. A regular save
// replaces any existing workspace with that name wholesale and marks it
// current; an auto-save only overwrites the previous-workspace slot and
// leaves the named collection untouched.
func (m *Manager) Save(ctx context.Context, name string, isAutoSave bool) (*Workspace, error) {
	if err := ValidateWorkspaceName(name); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.storage.ReadState()
	if err != nil {
		return nil, err
	}
	panes, err := m.host.ListOpenPanes(ctx)
	if err != nil {
		return nil, err
	}

	ws := m.buildWorkspace(name, panes)
	if err := m.saveLocked(state, ws, isAutoSave); err != nil {
		return nil, err
	}
	return &ws, nil
}

// buildWorkspace resolves live panes into a persisted workspace. Diff panes
// keep only their modified side; custom panes have nothing to persist.
func (m *Manager) buildWorkspace(name string, panes []Pane) Workspace {
	descriptors := DescribePanes(panes)
	tabs := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		if id, ok := d.ResourceID(); ok {
			tabs = append(tabs, id)
		}
	}
	now := time.Now().UTC()
	return Workspace{Name: name, Tabs: tabs, CreatedAt: now, LastModified: now}
}

func (m *Manager) saveLocked(state *StoreState, ws Workspace, isAutoSave bool) error {
	if isAutoSave {
		slot := ws
		state.PreviousWorkspace = &slot
		LogDebug("auto-saved %s into previous slot (%d tabs)", ws.Name, len(ws.Tabs))
	} else {
		if state.find(ws.Name) >= 0 {
			LogDebug("replacing existing workspace %q", ws.Name)
		}
		state.remove(ws.Name)
		state.Workspaces = append(state.Workspaces, ws)
		state.CurrentWorkspace = ws.Name
	}
	return m.storage.WriteState(state)
}

// Load closes the live pane set and reopens the named workspace's tabs.
// With autoSaveCurrentFirst, the live set is captured into the previous
// slot before teardown, provided at least one pane is open. The workspace
// becomes current and its lastModified is refreshed regardless of how many
// tabs were skipped.
func (m *Manager) Load(ctx context.Context, name string, autoSaveCurrentFirst bool) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.storage.ReadState()
	if err != nil {
		return Result{}, err
	}
	if state.find(name) < 0 {
		return Result{}, &NotFoundError{Name: name}
	}

	if autoSaveCurrentFirst {
		panes, err := m.host.ListOpenPanes(ctx)
		if err != nil {
			return Result{}, err
		}
		if len(panes) > 0 {
			autosave := m.buildWorkspace(autoSaveName(), panes)
			if err := m.saveLocked(state, autosave, true); err != nil {
				return Result{}, err
			}
		}
	}

	return m.loadLocked(ctx, state, name)
}

// loadLocked runs the reopen against a workspace already known to exist in
// state, then records it as current.
func (m *Manager) loadLocked(ctx context.Context, state *StoreState, name string) (Result, error) {
	i := state.find(name)
	target := m.restoreTargets(state.Workspaces[i].Tabs)
	res, err := m.reopener.Execute(ctx, target)
	if err != nil {
		return res, err
	}

	state.CurrentWorkspace = name
	state.Workspaces[i].LastModified = time.Now().UTC()
	if err := m.storage.WriteState(state); err != nil {
		return res, err
	}
	return res, nil
}

// restoreTargets parses persisted resource strings back into descriptors.
// Identifiers outside the document scheme become label-only descriptors,
// which the executor counts as skipped without attempting an open.
func (m *Manager) restoreTargets(tabs []string) []TabDescriptor {
	target := make([]TabDescriptor, 0, len(tabs))
	for _, raw := range tabs {
		if uriScheme(raw) != m.scheme {
			target = append(target, TabDescriptor{Kind: PaneCustom, Label: raw})
			continue
		}
		target = append(target, TabDescriptor{
			Kind:  PaneDocument,
			URI:   raw,
			Label: filepath.Base(uriPath(raw)),
		})
	}
	return target
}

// Delete removes a named workspace. Deleting the current workspace clears
// the current reference and nothing else.
func (m *Manager) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.storage.ReadState()
	if err != nil {
		return err
	}
	if state.find(name) < 0 {
		return &NotFoundError{Name: name}
	}
	state.remove(name)
	if state.CurrentWorkspace == name {
		state.CurrentWorkspace = ""
	}
	return m.storage.WriteState(state)
}

// Rename changes a workspace's name, refusing to clobber an existing one.
// If the renamed workspace was current, the current reference follows it.
func (m *Manager) Rename(oldName, newName string) error {
	if err := ValidateWorkspaceName(newName); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.storage.ReadState()
	if err != nil {
		return err
	}
	i := state.find(oldName)
	if i < 0 {
		return &NotFoundError{Name: oldName}
	}
	if state.find(newName) >= 0 {
		return &ConflictError{Name: newName}
	}

	state.Workspaces[i].Name = newName
	state.Workspaces[i].LastModified = time.Now().UTC()
	if state.CurrentWorkspace == oldName {
		state.CurrentWorkspace = newName
	}
	return m.storage.WriteState(state)
}

// RestorePrevious materializes the previous slot's tab list as a new named
// workspace, loads it, and empties the slot. Only the slot's tabs survive;
// its name and timestamps are discarded.
func (m *Manager) RestorePrevious(ctx context.Context) (string, Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.storage.ReadState()
	if err != nil {
		return "", Result{}, err
	}
	if state.PreviousWorkspace == nil {
		return "", Result{}, &NoPreviousError{}
	}

	now := time.Now().UTC()
	name := restoredName()
	ws := Workspace{
		Name:         name,
		Tabs:         append([]string(nil), state.PreviousWorkspace.Tabs...),
		CreatedAt:    now,
		LastModified: now,
	}
	state.Workspaces = append(state.Workspaces, ws)
	if err := m.storage.WriteState(state); err != nil {
		return "", Result{}, err
	}

	res, err := m.loadLocked(ctx, state, name)
	if err != nil {
		return name, res, err
	}

	state.PreviousWorkspace = nil
	if err := m.storage.WriteState(state); err != nil {
		return name, res, err
	}
	return name, res, nil
}

// CurrentName resolves the current-workspace reference. The reference is
// weak: if it points at a deleted workspace it reads as absent.
func (m *Manager) CurrentName() (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.storage.ReadState()
	if err != nil {
		return "", false, err
	}
	if state.CurrentWorkspace == "" || state.find(state.CurrentWorkspace) < 0 {
		return "", false, nil
	}
	return state.CurrentWorkspace, true, nil
}

// Statistics summarizes the store without side effects.
func (m *Manager) Statistics() (Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.storage.ReadState()
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{
		Workspaces:  len(state.Workspaces),
		HasPrevious: state.PreviousWorkspace != nil,
	}
	for _, ws := range state.Workspaces {
		stats.Tabs += len(ws.Tabs)
	}
	if state.CurrentWorkspace != "" && state.find(state.CurrentWorkspace) >= 0 {
		stats.Current = state.CurrentWorkspace
	}
	return stats, nil
}

func autoSaveName() string {
	return "autosave-" + uuid.NewString()[:8]
}

func restoredName() string {
	return "restored-" + uuid.NewString()[:8]
}
