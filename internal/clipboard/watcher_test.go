package clipboard

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestWatcher() *Watcher {
	return NewWatcher(log.New(io.Discard))
}

func TestIsSelfEchoSuppressesMarkedTextOnce(t *testing.T) {
	w := newTestWatcher()
	markup := "![[attachments/cat.png]]"

	w.MarkWritten(markup)

	if !w.isSelfEcho(markup) {
		t.Error("Expected the written text to be suppressed when it echoes back")
	}
	// The mark is consumed; the same text pasted again is a real user action
	if w.isSelfEcho(markup) {
		t.Error("Expected suppression to apply exactly once")
	}
}

func TestIsSelfEchoIgnoresUnrelatedText(t *testing.T) {
	w := newTestWatcher()
	w.MarkWritten("![[attachments/cat.png]]")

	if w.isSelfEcho("https://example.com/dog.png") {
		t.Error("Expected unrelated clipboard content to pass through")
	}

	// An unrelated payload does not consume the pending mark
	if !w.isSelfEcho("![[attachments/cat.png]]") {
		t.Error("Expected the written text to still be suppressed after unrelated content")
	}
}

func TestIsSelfEchoWithoutMark(t *testing.T) {
	w := newTestWatcher()

	if w.isSelfEcho("![[attachments/cat.png]]") {
		t.Error("Expected no suppression before anything was written")
	}
	if w.isSelfEcho("") {
		t.Error("Expected empty payload to pass through")
	}
}

func TestMarkWrittenReplacesPreviousMark(t *testing.T) {
	w := newTestWatcher()
	w.MarkWritten("![[attachments/first.png]]")
	w.MarkWritten("![[attachments/second.png]]")

	if w.isSelfEcho("![[attachments/first.png]]") {
		t.Error("Expected a newer mark to replace the older one")
	}
	if !w.isSelfEcho("![[attachments/second.png]]") {
		t.Error("Expected the latest written text to be suppressed")
	}
}
