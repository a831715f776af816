package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vaultink/pasteimg/internal/model"
	"github.com/vaultink/pasteimg/internal/platform"
)

// EmbedRow renders one embed task: status, title, and actions on the saved
// file once the task completes.
type EmbedRow struct {
	window fyne.Window
	vault  *platform.VaultFS
	task   *model.EmbedTask

	statusLabel *widget.Label
	titleLabel  *widget.Label
	revealBtn   *widget.Button // reveal in file manager
	copyBtn     *widget.Button // copy embed markup

	container *fyne.Container
}

// NewEmbedRow creates a row for the given task.
func NewEmbedRow(task *model.EmbedTask, window fyne.Window, vault *platform.VaultFS) *EmbedRow {
	row := &EmbedRow{
		window: window,
		vault:  vault,
		task:   task,
	}

	row.statusLabel = widget.NewLabel(task.Status.String())
	row.titleLabel = widget.NewLabel(task.GetDisplayTitle())
	row.titleLabel.Truncation = fyne.TextTruncateEllipsis

	row.revealBtn = widget.NewButton("Reveal", row.onReveal)
	row.copyBtn = widget.NewButton("Copy", row.onCopy)
	row.revealBtn.Hide()
	row.copyBtn.Hide()

	actions := container.NewHBox(row.revealBtn, row.copyBtn)
	row.container = container.NewBorder(nil, nil, row.statusLabel, actions, row.titleLabel)
	return row
}

// Container returns the row's canvas object.
func (r *EmbedRow) Container() *fyne.Container {
	return r.container
}

// Update refreshes the row from the task's current state.
func (r *EmbedRow) Update(task *model.EmbedTask) {
	r.task = task
	r.statusLabel.SetText(task.Status.String())
	r.titleLabel.SetText(task.GetDisplayTitle())

	if task.Status == model.TaskStatusCompleted {
		r.revealBtn.Show()
		r.copyBtn.Show()
	} else {
		r.revealBtn.Hide()
		r.copyBtn.Hide()
	}
}

// onReveal opens the saved attachment in the system file manager.
func (r *EmbedRow) onReveal() {
	if r.task.RelativePath == "" {
		return
	}
	if err := platform.RevealFile(r.vault.Resolve(r.task.RelativePath)); err != nil {
		r.statusLabel.SetText("Reveal failed")
	}
}

// onCopy puts the embed markup on the clipboard.
func (r *EmbedRow) onCopy() {
	if r.task.RelativePath == "" {
		return
	}
	r.window.Clipboard().SetContent(r.task.EmbedMarkup())
}
