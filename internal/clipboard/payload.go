// Package clipboard integrates with the system clipboard: it extracts URL
// candidates from clipboard payloads, watches for new content, and writes the
// local-embed markup back so the user's next paste inserts it.
package clipboard

import (
	"strings"

	"github.com/vaultink/pasteimg/internal/classify"
)

// Payload is an opaque clipboard-data snapshot. Only the plain-text
// representation is consulted.
type Payload struct {
	Text string
}

// URLFromPayload pulls a URL out of a clipboard payload. A nil payload,
// empty text, or text that does not parse as an absolute URL yields absent.
// Valid URLs are returned unchanged, with no normalization.
func URLFromPayload(p *Payload) (string, bool) {
	if p == nil {
		return "", false
	}
	text := p.Text
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	if !classify.IsAbsoluteURL(text) {
		return "", false
	}
	return text, true
}
