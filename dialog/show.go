package dialog

import (
	"context"
	"fmt"
	"time"
)

// Renderer turns a built document into a visible modal window. It is
// the external toolkit collaborator: implementations must block until
// the window closes and return the label of the activated button, or ""
// when the window closed without one (timeout, chrome close). When ctx
// is cancelled the renderer must close the window and return "".
type Renderer interface {
	ShowModal(ctx context.Context, doc *Document) (clicked string, err error)
}

// Show validates and builds the dialog, then displays it modally
// through r, blocking the caller until the window closes.
//
// The auto-close timeout is enforced by a fixed one second poll against
// the deadline, so sub-second timeouts are effectively rounded up. The
// sound cue fires once when the window is about to appear; OnLoaded and
// OnClosed run around the modal display on the calling goroutine.
//
// The clicked button label is returned only when ReturnButton is set.
func (s *Spec) Show(ctx context.Context, r Renderer) (string, error) {
	doc, err := s.Build()
	if err != nil {
		return "", err
	}

	if s.Sound {
		go beep()
	}

	showCtx := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		showCtx, cancel = context.WithCancel(ctx)
		defer cancel()

		deadline := time.Now().Add(s.Timeout)
		go pollDeadline(showCtx, cancel, deadline, s.pollInterval)
	}

	if s.OnLoaded != nil {
		s.OnLoaded()
	}

	clicked, err := r.ShowModal(showCtx, doc)

	if s.OnClosed != nil {
		s.OnClosed()
	}

	if err != nil {
		return "", fmt.Errorf("display dialog: %w", err)
	}
	if !s.ReturnButton {
		return "", nil
	}
	return clicked, nil
}

// pollDeadline cancels the dialog once a poll tick observes the
// deadline in the past. The interval is fixed at one second, matching
// the coarse timer granularity of the original dialog.
func pollDeadline(ctx context.Context, cancel context.CancelFunc, deadline time.Time, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if !now.Before(deadline) {
				cancel()
				return
			}
		}
	}
}
