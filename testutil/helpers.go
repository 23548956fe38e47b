package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/tabstash/tabstash/internal"
)

// SeedStateDB writes a store document into a fresh state database and
// returns the database path.
func SeedStateDB(t *testing.T, state *internal.StoreState) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	db, err := internal.OpenStateDB(path)
	if err != nil {
		t.Fatalf("Failed to open state database: %v", err)
	}
	defer db.Close()

	if err := db.WriteState(state); err != nil {
		t.Fatalf("Failed to seed state database: %v", err)
	}
	return path
}

// EmptyStateDB returns the path of a fresh, empty state database.
func EmptyStateDB(t *testing.T) string {
	t.Helper()
	return SeedStateDB(t, &internal.StoreState{})
}

// WritePaneSnapshot writes an editor-bridge pane snapshot file and returns
// its path.
func WritePaneSnapshot(t *testing.T, panes ...internal.Pane) string {
	t.Helper()
	doc := map[string]interface{}{"panes": panes}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal pane snapshot: %v", err)
	}
	path := filepath.Join(t.TempDir(), "panes.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write pane snapshot: %v", err)
	}
	return path
}

// WriteTestDocument creates a text file and returns its file URI.
func WriteTestDocument(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test document: %v", err)
	}
	return internal.FileURI(path)
}
