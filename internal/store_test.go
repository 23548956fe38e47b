package internal

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestManager_Save_ReplacesExistingName(t *testing.T) {
	host := newFakeHost(docPane("file:///one.go", 1))
	manager, storage := newTestManager(host)
	ctx := context.Background()

	if _, err := manager.Save(ctx, "X", false); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	host.panes = []Pane{docPane("file:///two.go", 1), docPane("file:///three.go", 2)}
	if _, err := manager.Save(ctx, "X", false); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	if len(storage.state.Workspaces) != 1 {
		t.Fatalf("store holds %d workspaces named, want 1", len(storage.state.Workspaces))
	}
	ws := storage.state.Workspaces[0]
	if ws.Name != "X" {
		t.Errorf("workspace name = %q, want X", ws.Name)
	}
	if len(ws.Tabs) != 2 || ws.Tabs[0] != "file:///two.go" || ws.Tabs[1] != "file:///three.go" {
		t.Errorf("workspace tabs = %v, want the second live set", ws.Tabs)
	}
	if storage.state.CurrentWorkspace != "X" {
		t.Errorf("current workspace = %q, want X", storage.state.CurrentWorkspace)
	}
}

func TestManager_Save_AutoSaveOnlyTouchesPreviousSlot(t *testing.T) {
	host := newFakeHost(docPane("file:///a.go", 1))
	manager, storage := newTestManager(host)
	ctx := context.Background()

	if _, err := manager.Save(ctx, "named", false); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := manager.Save(ctx, "autosave-test", true); err != nil {
		t.Fatalf("auto Save() error = %v", err)
	}

	if len(storage.state.Workspaces) != 1 || storage.state.Workspaces[0].Name != "named" {
		t.Errorf("auto-save touched the named collection: %+v", storage.state.Workspaces)
	}
	if storage.state.CurrentWorkspace != "named" {
		t.Errorf("auto-save changed current workspace to %q", storage.state.CurrentWorkspace)
	}
	if storage.state.PreviousWorkspace == nil {
		t.Fatal("auto-save did not populate the previous slot")
	}
	if len(storage.state.PreviousWorkspace.Tabs) != 1 {
		t.Errorf("previous slot tabs = %v", storage.state.PreviousWorkspace.Tabs)
	}
}

func TestManager_Save_DropsUnrestorablePanes(t *testing.T) {
	host := newFakeHost(
		docPane("file:///kept.go", 1),
		Pane{Kind: PaneDiff, OriginalURI: "file:///old.go", ModifiedURI: "file:///new.go", Label: "diff"},
		Pane{Kind: PaneCustom, Label: "Settings"},
	)
	manager, storage := newTestManager(host)

	if _, err := manager.Save(context.Background(), "mixed", false); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	tabs := storage.state.Workspaces[0].Tabs
	want := []string{"file:///kept.go", "file:///new.go"}
	if len(tabs) != len(want) {
		t.Fatalf("saved tabs = %v, want %v", tabs, want)
	}
	for i := range want {
		if tabs[i] != want[i] {
			t.Errorf("tabs[%d] = %q, want %q", i, tabs[i], want[i])
		}
	}
}

func TestManager_Save_InvalidName(t *testing.T) {
	manager, _ := newTestManager(newFakeHost())

	tests := []string{"", "a", "bad/name", "x" + string(make([]byte, 60))}
	for _, name := range tests {
		var invalidErr *InvalidNameError
		if _, err := manager.Save(context.Background(), name, false); !errors.As(err, &invalidErr) {
			t.Errorf("Save(%q) error = %v, want InvalidNameError", name, err)
		}
	}
}

func TestManager_Load_UnknownNameFailsCleanly(t *testing.T) {
	manager, storage := newTestManager(newFakeHost())

	_, err := manager.Load(context.Background(), "missing", true)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Load() error = %v, want NotFoundError", err)
	}
	if storage.writes != 0 {
		t.Errorf("failed load wrote the store %d times", storage.writes)
	}
}

func TestManager_Load_ReopensSavedSet(t *testing.T) {
	host := newFakeHost(docPane("file:///a.go", 1), docPane("file:///b.go", 1))
	host.existing["file:///a.go"] = true
	host.existing["file:///b.go"] = true
	manager, storage := newTestManager(host)
	ctx := context.Background()

	if _, err := manager.Save(ctx, "work", false); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	savedAt := storage.state.Workspaces[0].LastModified

	host.panes = []Pane{docPane("file:///unrelated.go", 1)}
	res, err := manager.Load(ctx, "work", false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if (res != Result{Opened: 2, Skipped: 0}) {
		t.Errorf("Load() = %+v, want {Opened:2 Skipped:0}", res)
	}

	got := host.shownURIs()
	if len(got) != 2 || got[0] != "file:///a.go" || got[1] != "file:///b.go" {
		t.Errorf("reopened %v, want saved order", got)
	}
	if storage.state.CurrentWorkspace != "work" {
		t.Errorf("current workspace = %q, want work", storage.state.CurrentWorkspace)
	}
	if !storage.state.Workspaces[0].LastModified.After(savedAt.Add(-time.Second)) {
		t.Error("load did not refresh lastModified")
	}
}

func TestManager_Load_SkipsMissingAndNonFileSchemes(t *testing.T) {
	host := newFakeHost()
	host.existing["file:///a.go"] = true
	host.existing["file:///c.go"] = true
	host.existing["file:///e.go"] = true
	manager, storage := newTestManager(host)

	storage.state.Workspaces = []Workspace{CreateTestWorkspace("mixed",
		"file:///a.go",
		"file:///b.go", // missing on disk
		"file:///c.go",
		"untitled:untitled-1", // non-file scheme, always skipped
		"file:///e.go",
	)}

	res, err := manager.Load(context.Background(), "mixed", false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if (res != Result{Opened: 3, Skipped: 2}) {
		t.Errorf("Load() = %+v, want {Opened:3 Skipped:2}", res)
	}
}

func TestManager_Load_AutoSavePopulatesPreviousSlot(t *testing.T) {
	host := newFakeHost(docPane("file:///before.go", 1))
	host.existing["file:///saved.go"] = true
	manager, storage := newTestManager(host)

	storage.state.Workspaces = []Workspace{CreateTestWorkspace("target", "file:///saved.go")}

	if _, err := manager.Load(context.Background(), "target", true); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	prev := storage.state.PreviousWorkspace
	if prev == nil {
		t.Fatal("previous slot not populated by auto-save")
	}
	if len(prev.Tabs) != 1 || prev.Tabs[0] != "file:///before.go" {
		t.Errorf("previous slot tabs = %v, want the pre-load live set", prev.Tabs)
	}
}

func TestManager_Load_NoAutoSaveWithEmptyLiveSet(t *testing.T) {
	host := newFakeHost()
	host.existing["file:///saved.go"] = true
	manager, storage := newTestManager(host)
	storage.state.Workspaces = []Workspace{CreateTestWorkspace("target", "file:///saved.go")}

	if _, err := manager.Load(context.Background(), "target", true); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if storage.state.PreviousWorkspace != nil {
		t.Error("auto-save ran with zero open panes")
	}
}

func TestManager_Delete(t *testing.T) {
	tests := []struct {
		name        string
		delete      string
		wantCurrent string
		wantErr     bool
	}{
		{name: "deleting current clears the reference", delete: "current", wantCurrent: ""},
		{name: "deleting another leaves current alone", delete: "other", wantCurrent: "current"},
		{name: "deleting unknown fails", delete: "nope", wantCurrent: "current", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager, storage := newTestManager(newFakeHost())
			storage.state = StoreState{
				Workspaces: []Workspace{
					CreateTestWorkspace("current", "file:///a.go"),
					CreateTestWorkspace("other", "file:///b.go"),
				},
				CurrentWorkspace: "current",
			}

			err := manager.Delete(tt.delete)
			if tt.wantErr {
				var notFound *NotFoundError
				if !errors.As(err, &notFound) {
					t.Fatalf("Delete() error = %v, want NotFoundError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if storage.state.CurrentWorkspace != tt.wantCurrent {
				t.Errorf("current = %q, want %q", storage.state.CurrentWorkspace, tt.wantCurrent)
			}
			if storage.state.find(tt.delete) >= 0 {
				t.Errorf("workspace %q still present after delete", tt.delete)
			}
		})
	}
}

func TestManager_Rename(t *testing.T) {
	seed := func() StoreState {
		return StoreState{
			Workspaces: []Workspace{
				CreateTestWorkspace("alpha", "file:///a.go"),
				CreateTestWorkspace("beta", "file:///b.go"),
			},
			CurrentWorkspace: "alpha",
		}
	}

	t.Run("conflict leaves both workspaces unmodified", func(t *testing.T) {
		manager, storage := newTestManager(newFakeHost())
		storage.state = seed()

		err := manager.Rename("alpha", "beta")
		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("Rename() error = %v, want ConflictError", err)
		}
		if storage.state.find("alpha") < 0 || storage.state.find("beta") < 0 {
			t.Error("conflicting rename modified the store")
		}
	})

	t.Run("unknown source fails", func(t *testing.T) {
		manager, storage := newTestManager(newFakeHost())
		storage.state = seed()

		var notFound *NotFoundError
		if err := manager.Rename("missing", "gamma"); !errors.As(err, &notFound) {
			t.Fatalf("Rename() error = %v, want NotFoundError", err)
		}
	})

	t.Run("renaming current follows the reference", func(t *testing.T) {
		manager, storage := newTestManager(newFakeHost())
		storage.state = seed()

		if err := manager.Rename("alpha", "gamma"); err != nil {
			t.Fatalf("Rename() error = %v", err)
		}
		if storage.state.find("gamma") < 0 {
			t.Error("renamed workspace not found under new name")
		}
		if storage.state.find("alpha") >= 0 {
			t.Error("old name still present after rename")
		}
		if storage.state.CurrentWorkspace != "gamma" {
			t.Errorf("current = %q, want gamma", storage.state.CurrentWorkspace)
		}
	})

	t.Run("renaming non-current leaves current alone", func(t *testing.T) {
		manager, storage := newTestManager(newFakeHost())
		storage.state = seed()

		if err := manager.Rename("beta", "gamma"); err != nil {
			t.Fatalf("Rename() error = %v", err)
		}
		if storage.state.CurrentWorkspace != "alpha" {
			t.Errorf("current = %q, want alpha", storage.state.CurrentWorkspace)
		}
	})
}

func TestManager_RestorePrevious(t *testing.T) {
	host := newFakeHost(docPane("file:///before.go", 1))
	host.existing["file:///before.go"] = true
	host.existing["file:///saved.go"] = true
	manager, storage := newTestManager(host)
	ctx := context.Background()

	storage.state.Workspaces = []Workspace{CreateTestWorkspace("target", "file:///saved.go")}

	// Empty slot: nothing to restore yet.
	var noPrev *NoPreviousError
	if _, _, err := manager.RestorePrevious(ctx); !errors.As(err, &noPrev) {
		t.Fatalf("RestorePrevious() error = %v, want NoPreviousError", err)
	}

	// A load with auto-save populates the slot.
	if _, err := manager.Load(ctx, "target", true); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if storage.state.PreviousWorkspace == nil {
		t.Fatal("previous slot empty after auto-saving load")
	}

	name, res, err := manager.RestorePrevious(ctx)
	if err != nil {
		t.Fatalf("RestorePrevious() error = %v", err)
	}
	if (res != Result{Opened: 1, Skipped: 0}) {
		t.Errorf("RestorePrevious() = %+v, want {Opened:1 Skipped:0}", res)
	}
	if storage.state.find(name) < 0 {
		t.Errorf("restored workspace %q not persisted", name)
	}
	if storage.state.CurrentWorkspace != name {
		t.Errorf("current = %q, want %q", storage.state.CurrentWorkspace, name)
	}
	if storage.state.PreviousWorkspace != nil {
		t.Error("previous slot not cleared after restore")
	}

	// The slot empties again: restoring works exactly once.
	if _, _, err := manager.RestorePrevious(ctx); !errors.As(err, &noPrev) {
		t.Fatalf("second RestorePrevious() error = %v, want NoPreviousError", err)
	}
}

func TestManager_CurrentName_WeakReference(t *testing.T) {
	manager, storage := newTestManager(newFakeHost())
	storage.state = StoreState{
		Workspaces:       []Workspace{CreateTestWorkspace("alive", "file:///a.go")},
		CurrentWorkspace: "deleted-long-ago",
	}

	name, ok, err := manager.CurrentName()
	if err != nil {
		t.Fatalf("CurrentName() error = %v", err)
	}
	if ok || name != "" {
		t.Errorf("CurrentName() = (%q, %v), want absent for dangling reference", name, ok)
	}

	storage.state.CurrentWorkspace = "alive"
	name, ok, err = manager.CurrentName()
	if err != nil {
		t.Fatalf("CurrentName() error = %v", err)
	}
	if !ok || name != "alive" {
		t.Errorf("CurrentName() = (%q, %v), want alive", name, ok)
	}
}

func TestManager_List_MostRecentFirst(t *testing.T) {
	manager, storage := newTestManager(newFakeHost())
	old := CreateTestWorkspace("old", "file:///a.go")
	old.LastModified = time.Now().UTC().Add(-time.Hour)
	mid := CreateTestWorkspace("mid", "file:///b.go")
	mid.LastModified = time.Now().UTC().Add(-time.Minute)
	fresh := CreateTestWorkspace("fresh", "file:///c.go")
	storage.state.Workspaces = []Workspace{old, fresh, mid}

	got, err := manager.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"fresh", "mid", "old"}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i].Name, want[i])
		}
	}
}

func TestManager_Statistics(t *testing.T) {
	manager, storage := newTestManager(newFakeHost())
	storage.state = StoreState{
		Workspaces: []Workspace{
			CreateTestWorkspace("a", "file:///1.go", "file:///2.go"),
			CreateTestWorkspace("b", "file:///3.go"),
		},
		CurrentWorkspace:  "b",
		PreviousWorkspace: &Workspace{Tabs: []string{"file:///old.go"}},
	}

	stats, err := manager.Statistics()
	if err != nil {
		t.Fatalf("Statistics() error = %v", err)
	}
	want := Stats{Workspaces: 2, Tabs: 3, Current: "b", HasPrevious: true}
	if stats != want {
		t.Errorf("Statistics() = %+v, want %+v", stats, want)
	}
}
