package clipboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	xclip "golang.design/x/clipboard"
)

// Watcher monitors the system clipboard and hands each new plain-text
// payload to a callback. Content the app itself wrote back (the embed
// markup) is suppressed so the pipeline does not trigger on its own output.
type Watcher struct {
	log *log.Logger

	// suppress echoing content we just wrote to the clipboard
	lastWrittenMu sync.Mutex
	lastWritten   string
}

// NewWatcher creates a clipboard watcher.
func NewWatcher(logger *log.Logger) *Watcher {
	return &Watcher{log: logger}
}

// Start initialises the system clipboard and launches the watch loop. Each
// new text payload is delivered on its own goroutine, so a slow paste
// operation never blocks the next one. Start returns immediately; the loop
// stops when ctx is cancelled.
func (w *Watcher) Start(ctx context.Context, onPaste func(*Payload)) error {
	// Required once per process by golang.design/x/clipboard.
	if err := xclip.Init(); err != nil {
		return fmt.Errorf("clipboard init: %w", err)
	}

	ch := xclip.Watch(ctx, xclip.FmtText)
	go func() {
		for data := range ch {
			text := string(data)
			if w.isSelfEcho(text) {
				continue
			}
			w.log.Debug("clipboard change", "bytes", len(text))
			go onPaste(&Payload{Text: text})
		}
	}()
	return nil
}

// MarkWritten records text the app is about to place on the clipboard so the
// watch loop skips it when it comes back around.
func (w *Watcher) MarkWritten(text string) {
	w.lastWrittenMu.Lock()
	w.lastWritten = text
	w.lastWrittenMu.Unlock()
}

func (w *Watcher) isSelfEcho(text string) bool {
	w.lastWrittenMu.Lock()
	defer w.lastWrittenMu.Unlock()
	if w.lastWritten != "" && text == w.lastWritten {
		w.lastWritten = ""
		return true
	}
	return false
}
