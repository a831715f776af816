package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vaultink/pasteimg/internal/config"
	"github.com/vaultink/pasteimg/internal/download"
	"github.com/vaultink/pasteimg/internal/model"
	"github.com/vaultink/pasteimg/internal/platform"
)

// Window layout constants
const (
	HeaderText   = "Watching clipboard for image URLs"
	MaxShownRows = 50
)

// RootUI is the main application window: a status header, a transient notice
// line, and the list of recent embed tasks.
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	settings *config.Settings
	vault    *platform.VaultFS

	statusLabel *widget.Label
	noticeLabel *widget.Label
	taskList    *fyne.Container

	rowsMu sync.Mutex
	rows   map[string]*EmbedRow

	noticeTimer *time.Timer
}

// NewRootUI creates and wires the main window. It subscribes to task updates
// from the download service.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, downloader download.Downloader, vault *platform.VaultFS) *RootUI {
	ui := &RootUI{
		window:   window,
		app:      app,
		settings: settings,
		vault:    vault,
		rows:     make(map[string]*EmbedRow),
	}

	ui.createUI()
	downloader.SetUpdateCallback(ui.onTaskUpdate)
	return ui
}

// createUI builds the window content
func (ui *RootUI) createUI() {
	ui.statusLabel = widget.NewLabel(HeaderText)

	settingsBtn := widget.NewButton("Settings", func() {
		NewSettingsDialog(ui.settings, ui.window).Show()
	})
	header := container.NewBorder(nil, nil, ui.statusLabel, settingsBtn)

	ui.noticeLabel = widget.NewLabel("")
	ui.noticeLabel.Hide()

	ui.taskList = container.NewVBox()
	scroll := container.NewVScroll(ui.taskList)

	content := container.NewBorder(
		container.NewVBox(header, ui.noticeLabel, widget.NewSeparator()),
		nil, nil, nil,
		scroll,
	)
	ui.window.SetContent(content)
}

// onTaskUpdate renders a task update. Called from background goroutines, so
// all widget mutation goes through fyne.Do.
func (ui *RootUI) onTaskUpdate(task *model.EmbedTask) {
	fyne.Do(func() {
		ui.rowsMu.Lock()
		row, exists := ui.rows[task.ID]
		if !exists {
			row = NewEmbedRow(task, ui.window, ui.vault)
			ui.rows[task.ID] = row
		}
		ui.rowsMu.Unlock()

		if !exists {
			// Newest rows on top
			objects := append([]fyne.CanvasObject{row.Container()}, ui.taskList.Objects...)
			if len(objects) > MaxShownRows {
				objects = objects[:MaxShownRows]
			}
			ui.taskList.Objects = objects
			ui.taskList.Refresh()
		}
		row.Update(task)
	})
}

// ShowNotice displays a transient message on the in-app notice line.
func (ui *RootUI) ShowNotice(message string, duration time.Duration) {
	fyne.Do(func() {
		ui.noticeLabel.SetText(message)
		ui.noticeLabel.Show()

		if ui.noticeTimer != nil {
			ui.noticeTimer.Stop()
		}
		ui.noticeTimer = time.AfterFunc(duration, func() {
			fyne.Do(func() {
				ui.noticeLabel.Hide()
			})
		})
	})
}
