package ui

// Package ui contains the Fyne-based desktop user interface: the recent
// embeds window, the settings dialog, the confirmation prompt, and user
// notifications. It wires user interactions to the download service.
