package model

// Template placeholders recognized by the filename generator
const (
	PlaceholderName      = "{name}"
	PlaceholderTimestamp = "{timestamp}"
	PlaceholderDate      = "{date}"
)

// NamingPolicy controls how local filenames are derived from a remote URL.
// It is immutable per invocation; callers construct a fresh value from
// configuration for every paste.
type NamingPolicy struct {
	FormatTemplate string // template with {name}, {timestamp}, {date} placeholders
	UseTimestamp   bool   // when false, {timestamp} expands to the empty string
}

// DownloadRequest describes a single fetch-and-persist invocation. It is
// constructed fresh per paste event and has no identity beyond the call.
type DownloadRequest struct {
	SourceURL       string
	TargetDirectory string // vault-relative, forward-slash separated
	Policy          NamingPolicy
}

// DownloadResult is produced once per request; results are never cached or
// retried.
type DownloadResult struct {
	RelativePath string // vault-relative path of the saved image
}
