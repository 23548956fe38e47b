package internal

import (
	"context"
	"time"
)

// Default pacing used when a Delays field is left zero. The host gives no
// completion signal for close/open requests, so the executor waits for tab
// group state to settle instead.
const (
	DefaultCloseSettle = 100 * time.Millisecond
	DefaultOpenPacing  = 50 * time.Millisecond
)

// Delays control executor pacing around host calls.
type Delays struct {
	// CloseSettle is waited once after the batch close.
	CloseSettle time.Duration
	// OpenPacing is waited between successive opens.
	OpenPacing time.Duration
}

// Result reports the outcome of a close/reopen run.
type Result struct {
	Opened  int `json:"opened"`
	Skipped int `json:"skipped"`
}

// Reopener tears down the live pane set and rebuilds it from an ordered
// target sequence. Individual pane failures are absorbed into the Skipped
// counter; only a failed batch close aborts the run.
type Reopener struct {
	host   Host
	delays Delays
}

// NewReopener creates a Reopener. Zero delay fields fall back to the
// defaults.
func NewReopener(host Host, delays Delays) *Reopener {
	if delays.CloseSettle == 0 {
		delays.CloseSettle = DefaultCloseSettle
	}
	if delays.OpenPacing == 0 {
		delays.OpenPacing = DefaultOpenPacing
	}
	return &Reopener{host: host, delays: delays}
}

// Execute closes every open pane, then reopens the target sequence in
// order. The descriptor flagged Active (if any) is revealed with focus once
// the bulk reopen is done; a failure there is logged and swallowed.
//
// A BatchCloseError means nothing was reopened. There is no rollback of a
// partially completed reopen.
func (r *Reopener) Execute(ctx context.Context, target []TabDescriptor) (Result, error) {
	var res Result

	var active *TabDescriptor
	for i := range target {
		if target[i].Active {
			active = &target[i]
			break
		}
	}

	open, err := r.host.ListOpenPanes(ctx)
	if err != nil {
		return res, &BatchCloseError{Err: err}
	}
	if len(open) > 0 {
		if err := r.host.ClosePanes(ctx, open, true); err != nil {
			return res, &BatchCloseError{Err: err}
		}
		LogDebug("closed %d panes, settling", len(open))
		r.sleep(ctx, r.delays.CloseSettle)
	}

	for i, tab := range target {
		if i > 0 {
			r.sleep(ctx, r.delays.OpenPacing)
		}

		switch tab.Kind {
		case PaneDocument:
			if err := r.openDocument(ctx, tab); err != nil {
				res.Skipped++
				r.logSkip(tab, err)
				continue
			}
			res.Opened++
		case PaneDiff:
			opts := DiffOptions{ViewColumn: tab.ViewColumn, Preview: !tab.Pinned}
			if err := r.host.OpenDiff(ctx, tab.OriginalURI, tab.ModifiedURI, tab.Label, opts); err != nil {
				res.Skipped++
				r.logSkip(tab, err)
				continue
			}
			res.Opened++
		default:
			res.Skipped++
			LogDebug("skipping %s: no resolvable resource", tab.DisplayName())
		}
	}

	if active != nil {
		if err := r.focus(ctx, *active); err != nil {
			LogWarn("could not restore focus to %s: %v", active.DisplayName(), err)
		}
	}

	return res, nil
}

func (r *Reopener) openDocument(ctx context.Context, tab TabDescriptor) error {
	if err := r.host.StatResource(ctx, tab.URI); err != nil {
		return err
	}
	handle, err := r.host.OpenDocument(ctx, tab.URI)
	if err != nil {
		return err
	}
	return r.host.ShowDocument(ctx, handle, ShowOptions{
		ViewColumn: tab.ViewColumn,
		Preview:    !tab.Pinned,
		Focus:      false,
	})
}

func (r *Reopener) focus(ctx context.Context, tab TabDescriptor) error {
	switch tab.Kind {
	case PaneDocument:
		handle, err := r.host.OpenDocument(ctx, tab.URI)
		if err != nil {
			return err
		}
		return r.host.ShowDocument(ctx, handle, ShowOptions{
			ViewColumn: tab.ViewColumn,
			Preview:    !tab.Pinned,
			Focus:      true,
		})
	case PaneDiff:
		// Reissuing the diff command reveals the existing comparison pane.
		return r.host.OpenDiff(ctx, tab.OriginalURI, tab.ModifiedURI, tab.Label, DiffOptions{
			ViewColumn: tab.ViewColumn,
			Preview:    !tab.Pinned,
		})
	default:
		return nil
	}
}

func (r *Reopener) logSkip(tab TabDescriptor, err error) {
	if isBinaryOpenError(err) {
		LogDebug("skipping %s: %v", tab.DisplayName(), err)
		return
	}
	LogError("failed to reopen %s: %v", tab.DisplayName(), err)
}

func (r *Reopener) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
