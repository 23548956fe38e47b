package internal

// DescribePanes converts the host's live pane list into descriptors,
// preserving host order, focus, pin state and view column. It never fails:
// panes whose kind is unrecognized, or whose resources the host did not
// report, degrade to label-only custom descriptors.
func DescribePanes(panes []Pane) []TabDescriptor {
	descriptors := make([]TabDescriptor, 0, len(panes))
	for _, pane := range panes {
		descriptors = append(descriptors, describePane(pane))
	}
	return descriptors
}

func describePane(pane Pane) TabDescriptor {
	d := TabDescriptor{
		Label:      pane.Label,
		Active:     pane.Active,
		Pinned:     pane.Pinned,
		ViewColumn: pane.ViewColumn,
	}

	switch pane.Kind {
	case PaneDocument:
		if pane.URI == "" {
			d.Kind = PaneCustom
			return d
		}
		d.Kind = PaneDocument
		d.URI = pane.URI
		d.ViewType = pane.ViewType
	case PaneDiff:
		if pane.ModifiedURI == "" {
			d.Kind = PaneCustom
			return d
		}
		d.Kind = PaneDiff
		d.OriginalURI = pane.OriginalURI
		d.ModifiedURI = pane.ModifiedURI
	default:
		d.Kind = PaneCustom
	}
	return d
}
