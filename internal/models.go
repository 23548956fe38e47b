package internal

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// PaneKind discriminates the shapes a pane (and its descriptor) can take.
// All matching is by this tag, never by inspecting which fields are set.
type PaneKind string

const (
	// PaneDocument is a plain text document pane.
	PaneDocument PaneKind = "document"
	// PaneDiff is a comparison pane showing two resources side by side.
	PaneDiff PaneKind = "diff"
	// PaneCustom is a non-document view tracked only by its label.
	PaneCustom PaneKind = "custom"
)

// TabDescriptor is the restorable identity of one open pane.
//
// A document descriptor carries URI (and optionally ViewType for custom
// editors over a document); a diff descriptor carries OriginalURI and
// ModifiedURI; a custom descriptor carries only Label.
type TabDescriptor struct {
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

// ResourceID returns the identifier persisted for this descriptor: a
// document's own URI, or the modified side of a diff. Custom panes have no
// persistable resource.
func (d TabDescriptor) ResourceID() (string, bool) {
	switch d.Kind {
	case PaneDocument:
		return d.URI, d.URI != ""
	case PaneDiff:
		return d.ModifiedURI, d.ModifiedURI != ""
	default:
		return "", false
	}
}

// DisplayName returns a human-readable name for log lines.
func (d TabDescriptor) DisplayName() string {
	if d.Label != "" {
		return d.Label
	}
	if id, ok := d.ResourceID(); ok {
		return filepath.Base(uriPath(id))
	}
	return string(d.Kind)
}

// Workspace is a named, persisted snapshot of open panes. Tabs holds
// resource identifiers in restore order.
type Workspace struct {
	Name         string    `json:"name" yaml:"name"`
	Tabs         []string  `json:"tabs" yaml:"tabs"`
	CreatedAt    time.Time `json:"createdAt" yaml:"created_at"`
	LastModified time.Time `json:"lastModified" yaml:"last_modified"`
}

// StoreState is the persisted root document. CurrentWorkspace is a weak
// name reference: it may point at a workspace that was since deleted, in
// which case it reads as absent. PreviousWorkspace is a single-slot buffer
// holding at most one auto-save, overwritten rather than appended.
type StoreState struct {
	Workspaces        []Workspace `json:"workspaces"`
	CurrentWorkspace  string      `json:"currentWorkspace,omitempty"`
	PreviousWorkspace *Workspace  `json:"previousWorkspace,omitempty"`
}

// find returns the index of the workspace with the given name, or -1.
func (s *StoreState) find(name string) int {
	for i := range s.Workspaces {
		if s.Workspaces[i].Name == name {
			return i
		}
	}
	return -1
}

// remove drops the workspace with the given name, if present.
func (s *StoreState) remove(name string) {
	if i := s.find(name); i >= 0 {
		s.Workspaces = append(s.Workspaces[:i], s.Workspaces[i+1:]...)
	}
}

var workspaceNameRe = regexp.MustCompile(`^[A-Za-z0-9 _.-]{2,50}$`)

// ValidateWorkspaceName checks the 2-50 character restricted-charset rule
// for user-supplied workspace names.
func ValidateWorkspaceName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &InvalidNameError{Name: name, Reason: "name is empty"}
	}
	if !workspaceNameRe.MatchString(name) {
		return &InvalidNameError{Name: name, Reason: "must be 2-50 characters: letters, digits, spaces, '_', '.', '-'"}
	}
	return nil
}

// uriScheme returns the scheme of a resource identifier, or "" when the
// identifier does not parse as a URI.
func uriScheme(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Scheme
}

// uriPath returns the filesystem-ish path portion of a resource identifier.
// Plain paths (no scheme) pass through unchanged.
func uriPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return raw
	}
	if u.Path != "" {
		return u.Path
	}
	return u.Opaque
}

// FileURI builds a file-scheme identifier from an absolute path.
func FileURI(path string) string {
	return (&url.URL{Scheme: "file", Path: path}).String()
}

