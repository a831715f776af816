package config

import (
	"fyne.io/fyne/v2"

	"github.com/vaultink/pasteimg/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyConfirmBeforeEmbed = "confirm_before_embed"
	KeyShowFilePath       = "show_file_path"
	KeyAttachmentFolder   = "attachment_folder"
	KeyFilenameFormat     = "filename_format"
	KeyUseTimestamp       = "use_timestamp"
)

// Default values
const (
	DefaultConfirmBeforeEmbed = true
	DefaultShowFilePath       = false
	DefaultFilenameFormat     = "{name}-{timestamp}"
	DefaultUseTimestamp       = true

	// DefaultAttachmentFolder is the host-wide fallback used when no
	// attachment folder is configured (the stored value stays empty).
	DefaultAttachmentFolder = "attachments"
)

// Settings manages application configuration. The backing store is the flat
// key/value preferences blob owned by the host app.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetConfirmBeforeEmbed returns whether to ask before downloading and embedding
func (s *Settings) GetConfirmBeforeEmbed() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmBeforeEmbed, DefaultConfirmBeforeEmbed)
}

// SetConfirmBeforeEmbed sets whether to ask before downloading and embedding
func (s *Settings) SetConfirmBeforeEmbed(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmBeforeEmbed, confirm)
}

// GetShowFilePath returns whether success notifications include the saved path
func (s *Settings) GetShowFilePath() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowFilePath, DefaultShowFilePath)
}

// SetShowFilePath sets whether success notifications include the saved path
func (s *Settings) SetShowFilePath(show bool) {
	s.app.Preferences().SetBool(KeyShowFilePath, show)
}

// GetAttachmentFolder returns the configured attachment folder, falling back
// to the host-wide default when unset. The stored value itself is left empty
// so clearing the setting keeps tracking the default.
func (s *Settings) GetAttachmentFolder() string {
	folder := s.app.Preferences().String(KeyAttachmentFolder)
	if folder == "" {
		return DefaultAttachmentFolder
	}
	return folder
}

// SetAttachmentFolder sets the attachment folder (vault-relative)
func (s *Settings) SetAttachmentFolder(folder string) {
	s.app.Preferences().SetString(KeyAttachmentFolder, folder)
}

// GetFilenameFormat returns the filename template
func (s *Settings) GetFilenameFormat() string {
	format := s.app.Preferences().String(KeyFilenameFormat)
	if format == "" {
		s.SetFilenameFormat(DefaultFilenameFormat)
		return DefaultFilenameFormat
	}
	return format
}

// SetFilenameFormat sets the filename template
func (s *Settings) SetFilenameFormat(format string) {
	if format == "" {
		format = DefaultFilenameFormat
	}
	s.app.Preferences().SetString(KeyFilenameFormat, format)
}

// GetUseTimestamp returns whether {timestamp} expands in generated filenames
func (s *Settings) GetUseTimestamp() bool {
	return s.app.Preferences().BoolWithFallback(KeyUseTimestamp, DefaultUseTimestamp)
}

// SetUseTimestamp sets whether {timestamp} expands in generated filenames
func (s *Settings) SetUseTimestamp(use bool) {
	s.app.Preferences().SetBool(KeyUseTimestamp, use)
}

// Snapshot is the configuration a paste operation observes. It is taken once
// at invocation start; settings edited while a paste is in flight do not
// affect it.
type Snapshot struct {
	ConfirmBeforeEmbed bool
	ShowFilePath       bool
	AttachmentFolder   string
	FilenameFormat     string
	UseTimestamp       bool
}

// Snapshot captures the current settings values.
func (s *Settings) Snapshot() Snapshot {
	return Snapshot{
		ConfirmBeforeEmbed: s.GetConfirmBeforeEmbed(),
		ShowFilePath:       s.GetShowFilePath(),
		AttachmentFolder:   s.GetAttachmentFolder(),
		FilenameFormat:     s.GetFilenameFormat(),
		UseTimestamp:       s.GetUseTimestamp(),
	}
}

// NamingPolicy converts the snapshot into the immutable policy handed to the
// filename generator.
func (sn Snapshot) NamingPolicy() model.NamingPolicy {
	return model.NamingPolicy{
		FormatTemplate: sn.FilenameFormat,
		UseTimestamp:   sn.UseTimestamp,
	}
}
