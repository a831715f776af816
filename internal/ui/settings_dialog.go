package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/vaultink/pasteimg/internal/config"
	"github.com/vaultink/pasteimg/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	attachmentFolderEntry *widget.Entry
	filenameFormatEntry   *widget.Entry
	useTimestampCheck     *widget.Check
	confirmCheck          *widget.Check
	showPathCheck         *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Attachment folder (vault-relative)
	sd.attachmentFolderEntry = widget.NewEntry()
	sd.attachmentFolderEntry.SetPlaceHolder(config.DefaultAttachmentFolder)

	// Filename template
	sd.filenameFormatEntry = widget.NewEntry()
	sd.filenameFormatEntry.SetPlaceHolder(config.DefaultFilenameFormat)

	sd.useTimestampCheck = widget.NewCheck("Expand {timestamp} in filenames", nil)
	sd.confirmCheck = widget.NewCheck("Ask before embedding", nil)
	sd.showPathCheck = widget.NewCheck("Show saved path in notifications", nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Embed Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Attachment Folder (vault-relative):"),
		sd.attachmentFolderEntry,

		widget.NewLabel("Filename Template ({name}, {timestamp}, {date}):"),
		sd.filenameFormatEntry,

		sd.useTimestampCheck,

		widget.NewSeparator(),
		widget.NewLabel("Paste Behavior"),
		widget.NewSeparator(),

		sd.confirmCheck,
		sd.showPathCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(460, 400))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.attachmentFolderEntry.SetText(sd.settings.GetAttachmentFolder())
	sd.filenameFormatEntry.SetText(sd.settings.GetFilenameFormat())
	sd.useTimestampCheck.SetChecked(sd.settings.GetUseTimestamp())
	sd.confirmCheck.SetChecked(sd.settings.GetConfirmBeforeEmbed())
	sd.showPathCheck.SetChecked(sd.settings.GetShowFilePath())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetAttachmentFolder(platform.NormalizeRelPath(sd.attachmentFolderEntry.Text))

	if sd.filenameFormatEntry.Text != "" {
		sd.settings.SetFilenameFormat(sd.filenameFormatEntry.Text)
	}

	sd.settings.SetUseTimestamp(sd.useTimestampCheck.Checked)
	sd.settings.SetConfirmBeforeEmbed(sd.confirmCheck.Checked)
	sd.settings.SetShowFilePath(sd.showPathCheck.Checked)

	// Show confirmation
	dialog.ShowInformation("Settings", "Settings saved successfully!", sd.window)
}
