package ui

import (
	"time"

	"fyne.io/fyne/v2"
)

// NotificationTitle is the title used for system notifications.
const NotificationTitle = "PasteImg"

// FyneNotifier surfaces messages as system notifications and mirrors them on
// the in-app notice line when one is wired.
type FyneNotifier struct {
	app      fyne.App
	onNotice func(message string, duration time.Duration)
}

// NewFyneNotifier creates a notifier. onNotice may be nil.
func NewFyneNotifier(app fyne.App, onNotice func(message string, duration time.Duration)) *FyneNotifier {
	return &FyneNotifier{app: app, onNotice: onNotice}
}

// Show sends the notification.
func (n *FyneNotifier) Show(message string, duration time.Duration) {
	n.app.SendNotification(&fyne.Notification{
		Title:   NotificationTitle,
		Content: message,
	})
	if n.onNotice != nil {
		n.onNotice(message, duration)
	}
}
