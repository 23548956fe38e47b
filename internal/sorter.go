package internal

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
)

// SortLive reorders the live pane set by file type and name: the panes are
// captured, sorted, closed and rebuilt in sorted order, with focus restored
// to the pane that was active. The bool reports whether there was anything
// to do; zero or one open pane is left alone.
func (m *Manager) SortLive(ctx context.Context, customOrder []string) (Result, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	panes, err := m.host.ListOpenPanes(ctx)
	if err != nil {
		return Result{}, false, err
	}
	target, ok := SortTabs(DescribePanes(panes), customOrder)
	if !ok {
		return Result{}, false, nil
	}
	res, err := m.reopener.Execute(ctx, target)
	if err != nil {
		return res, true, err
	}
	return res, true, nil
}

// SortTabs orders descriptors by file type and name. customOrder is an
// optional list of extensions (lower-case, no dot) that take priority:
// descriptors whose extension appears in it sort by its index, ahead of
// every descriptor whose extension does not. Outside the custom order,
// descriptors sort by extension, ties broken by base name.
//
// The second return value reports whether there was anything to sort;
// zero- and one-element inputs are returned unchanged.
func SortTabs(tabs []TabDescriptor, customOrder []string) ([]TabDescriptor, bool) {
	if len(tabs) < 2 {
		return tabs, false
	}

	rank := make(map[string]int, len(customOrder))
	for i, ext := range customOrder {
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))
		if _, seen := rank[ext]; !seen {
			rank[ext] = i
		}
	}

	sorted := make([]TabDescriptor, len(tabs))
	copy(sorted, tabs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return tabLess(sorted[i], sorted[j], rank)
	})
	return sorted, true
}

func tabLess(a, b TabDescriptor, rank map[string]int) bool {
	extA, keyA := sortFields(a)
	extB, keyB := sortFields(b)

	rankA, inA := rank[extA]
	rankB, inB := rank[extB]

	switch {
	case inA && inB:
		if rankA != rankB {
			return rankA < rankB
		}
		return keyA < keyB
	case inA:
		return true
	case inB:
		return false
	}

	if extA != extB {
		return extA < extB
	}
	return keyA < keyB
}

// sortFields derives a descriptor's extension and sort key. The resolvable
// path comes from the document URI or a diff's modified side; descriptors
// without one fall back to parsing the label as if it were a path.
func sortFields(d TabDescriptor) (ext, key string) {
	path := d.Label
	if id, ok := d.ResourceID(); ok {
		path = uriPath(id)
	}

	base := filepath.Base(path)
	ext = strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	key = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	return ext, key
}
