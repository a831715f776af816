package platform

// Package platform contains OS/platform integration: the vault filesystem
// backing the storage collaborator, and OS open/reveal for saved attachments.
