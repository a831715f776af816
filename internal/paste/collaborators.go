package paste

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogNotifier routes user notices to the diagnostic log. Used in headless
// watch mode where there is no window to surface them in.
type LogNotifier struct {
	Log *log.Logger
}

// Show logs the message; duration is meaningless without a UI.
func (n *LogNotifier) Show(message string, duration time.Duration) {
	n.Log.Info(message)
}

// AutoConfirmer answers every confirmation prompt the same way. Headless
// watch mode uses AutoConfirmer{Answer: true}.
type AutoConfirmer struct {
	Answer bool
}

// Confirm returns the fixed answer without prompting.
func (c AutoConfirmer) Confirm(ctx context.Context, message string) (bool, error) {
	return c.Answer, nil
}
