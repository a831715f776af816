package clipboard

import (
	xclip "golang.design/x/clipboard"
)

// Writeback is the production editor binding: "inserting at the cursor"
// means replacing the clipboard content with the embed markup, so the user's
// next paste drops in the local reference instead of the remote URL.
type Writeback struct {
	watcher *Watcher
}

// NewWriteback creates a Writeback editor. The watcher may be nil when no
// watch loop is running (one-shot use); when set, the written text is marked
// so the watcher does not re-trigger on it.
func NewWriteback(watcher *Watcher) *Writeback {
	return &Writeback{watcher: watcher}
}

// InsertAtCursor places text on the system clipboard. The clipboard must
// have been initialised (Watcher.Start does this).
func (wb *Writeback) InsertAtCursor(text string) error {
	if wb.watcher != nil {
		wb.watcher.MarkWritten(text)
	}
	xclip.Write(xclip.FmtText, []byte(text))
	return nil
}
