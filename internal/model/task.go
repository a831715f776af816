package model

import (
	"strings"
	"time"
)

// EmbedTask represents a single paste-to-embed operation for display in the
// recent-embeds list. The task ledger is presentation-side bookkeeping; the
// download pipeline itself holds no state beyond one invocation.
type EmbedTask struct {
	ID           string
	SourceURL    string
	RelativePath string // vault-relative path once the image is saved
	Status       TaskStatus
	LastError    string    // last error message if any
	StartedAt    time.Time // when the paste was picked up
	FinishedAt   time.Time // when the task reached a finished state
}

// GetDisplayTitle returns the saved filename, or the source URL while the
// download is still in flight.
func (et *EmbedTask) GetDisplayTitle() string {
	if et.RelativePath != "" {
		parts := strings.Split(et.RelativePath, "/")
		if len(parts) > 0 && parts[len(parts)-1] != "" {
			return parts[len(parts)-1]
		}
	}
	return et.SourceURL
}

// EmbedMarkup returns the local-embed markup inserted into the document,
// e.g. "![[attachments/image.png]]".
func (et *EmbedTask) EmbedMarkup() string {
	return "![[" + et.RelativePath + "]]"
}
