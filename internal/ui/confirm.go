package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// FyneConfirmer presents a yes/no dialog and resolves once the user chooses.
// Dismissing the dialog without choosing resolves to "no".
type FyneConfirmer struct {
	window fyne.Window
}

// NewFyneConfirmer creates a confirmer bound to the given window.
func NewFyneConfirmer(window fyne.Window) *FyneConfirmer {
	return &FyneConfirmer{window: window}
}

// Confirm blocks the calling goroutine until the user answers or ctx is
// cancelled. Safe to call from outside the UI thread.
func (c *FyneConfirmer) Confirm(ctx context.Context, message string) (bool, error) {
	result := make(chan bool, 1)

	fyne.Do(func() {
		dialog.ShowConfirm("Embed image", message, func(ok bool) {
			// Fyne invokes the callback with false on dismissal
			select {
			case result <- ok:
			default:
			}
		}, c.window)
	})

	select {
	case ok := <-result:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
