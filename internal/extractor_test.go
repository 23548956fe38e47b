package internal

import (
	"reflect"
	"testing"
)

func TestDescribePanes(t *testing.T) {
	tests := []struct {
		name string
		pane Pane
		want TabDescriptor
	}{
		{
			name: "document pane",
			pane: Pane{Kind: PaneDocument, URI: "file:///a.go", Label: "a.go", Pinned: true, ViewColumn: 2},
			want: TabDescriptor{Kind: PaneDocument, URI: "file:///a.go", Label: "a.go", Pinned: true, ViewColumn: 2},
		},
		{
			name: "custom editor over a document keeps its view type",
			pane: Pane{Kind: PaneDocument, URI: "file:///d.csv", ViewType: "tableEditor", Label: "d.csv"},
			want: TabDescriptor{Kind: PaneDocument, URI: "file:///d.csv", ViewType: "tableEditor", Label: "d.csv"},
		},
		{
			name: "diff pane",
			pane: Pane{Kind: PaneDiff, OriginalURI: "file:///old.go", ModifiedURI: "file:///new.go", Label: "old ↔ new", Active: true},
			want: TabDescriptor{Kind: PaneDiff, OriginalURI: "file:///old.go", ModifiedURI: "file:///new.go", Label: "old ↔ new", Active: true},
		},
		{
			name: "custom pane keeps only its label",
			pane: Pane{Kind: PaneCustom, Label: "Settings", ViewColumn: 1},
			want: TabDescriptor{Kind: PaneCustom, Label: "Settings", ViewColumn: 1},
		},
		{
			name: "unknown kind degrades to label-only",
			pane: Pane{Kind: PaneKind("terminal"), Label: "zsh"},
			want: TabDescriptor{Kind: PaneCustom, Label: "zsh"},
		},
		{
			name: "document without uri degrades to label-only",
			pane: Pane{Kind: PaneDocument, Label: "untitled-1"},
			want: TabDescriptor{Kind: PaneCustom, Label: "untitled-1"},
		},
		{
			name: "diff without modified side degrades to label-only",
			pane: Pane{Kind: PaneDiff, OriginalURI: "file:///old.go", Label: "broken diff"},
			want: TabDescriptor{Kind: PaneCustom, Label: "broken diff"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DescribePanes([]Pane{tt.pane})
			if len(got) != 1 {
				t.Fatalf("DescribePanes() returned %d descriptors, want 1", len(got))
			}
			if !reflect.DeepEqual(got[0], tt.want) {
				t.Errorf("DescribePanes() = %+v, want %+v", got[0], tt.want)
			}
		})
	}
}

func TestDescribePanes_PreservesOrder(t *testing.T) {
	panes := []Pane{
		docPane("file:///one.go", 1),
		{Kind: PaneDiff, OriginalURI: "file:///a", ModifiedURI: "file:///b", Label: "a ↔ b"},
		docPane("file:///two.go", 2),
	}

	got := DescribePanes(panes)
	if len(got) != 3 {
		t.Fatalf("DescribePanes() returned %d descriptors, want 3", len(got))
	}
	if got[0].URI != "file:///one.go" || got[1].ModifiedURI != "file:///b" || got[2].URI != "file:///two.go" {
		t.Errorf("DescribePanes() reordered panes: %+v", got)
	}
}
