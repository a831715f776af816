package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestConfirmBeforeEmbed(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if !settings.GetConfirmBeforeEmbed() {
		t.Error("Expected confirm-before-embed to default to true")
	}

	// Test setting custom value
	settings.SetConfirmBeforeEmbed(false)
	if settings.GetConfirmBeforeEmbed() {
		t.Error("Expected confirm-before-embed to be false after disabling")
	}
}

func TestShowFilePath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetShowFilePath() {
		t.Error("Expected show-file-path to default to false")
	}

	// Test setting custom value
	settings.SetShowFilePath(true)
	if !settings.GetShowFilePath() {
		t.Error("Expected show-file-path to be true after enabling")
	}
}

func TestAttachmentFolder(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Empty stored value falls back to the host-wide default
	if got := settings.GetAttachmentFolder(); got != DefaultAttachmentFolder {
		t.Errorf("Expected default attachment folder %s, got %s", DefaultAttachmentFolder, got)
	}

	// Test setting custom value
	settings.SetAttachmentFolder("assets/images")
	if got := settings.GetAttachmentFolder(); got != "assets/images" {
		t.Errorf("Expected attachment folder 'assets/images', got %s", got)
	}

	// Clearing tracks the default again
	settings.SetAttachmentFolder("")
	if got := settings.GetAttachmentFolder(); got != DefaultAttachmentFolder {
		t.Errorf("Expected cleared folder to fall back to %s, got %s", DefaultAttachmentFolder, got)
	}
}

func TestFilenameFormat(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetFilenameFormat(); got != DefaultFilenameFormat {
		t.Errorf("Expected default format %s, got %s", DefaultFilenameFormat, got)
	}

	// Test setting custom value
	customFormat := "{date}-{name}"
	settings.SetFilenameFormat(customFormat)
	if got := settings.GetFilenameFormat(); got != customFormat {
		t.Errorf("Expected format %s, got %s", customFormat, got)
	}

	// Test empty format defaults back
	settings.SetFilenameFormat("")
	if got := settings.GetFilenameFormat(); got != DefaultFilenameFormat {
		t.Errorf("Empty format should default to %s, got %s", DefaultFilenameFormat, got)
	}
}

func TestUseTimestamp(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if !settings.GetUseTimestamp() {
		t.Error("Expected use-timestamp to default to true")
	}

	// Test setting custom value
	settings.SetUseTimestamp(false)
	if settings.GetUseTimestamp() {
		t.Error("Expected use-timestamp to be false after disabling")
	}
}

func TestSnapshot(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetConfirmBeforeEmbed(false)
	settings.SetShowFilePath(true)
	settings.SetAttachmentFolder("media")
	settings.SetFilenameFormat("{name}")
	settings.SetUseTimestamp(false)

	snap := settings.Snapshot()

	if snap.ConfirmBeforeEmbed {
		t.Error("Expected snapshot confirm=false")
	}
	if !snap.ShowFilePath {
		t.Error("Expected snapshot showFilePath=true")
	}
	if snap.AttachmentFolder != "media" {
		t.Errorf("Expected snapshot folder 'media', got %s", snap.AttachmentFolder)
	}

	// A snapshot is unaffected by later settings edits
	settings.SetAttachmentFolder("elsewhere")
	if snap.AttachmentFolder != "media" {
		t.Error("Expected snapshot to be immutable after settings change")
	}

	policy := snap.NamingPolicy()
	if policy.FormatTemplate != "{name}" || policy.UseTimestamp {
		t.Errorf("Unexpected naming policy %+v", policy)
	}
}
