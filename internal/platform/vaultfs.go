package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// VaultFS exposes a vault directory on the local filesystem as the storage
// collaborator. All paths it receives are vault-relative and forward-slash
// separated; they are resolved against the vault root using the platform
// separator.
type VaultFS struct {
	root string
}

// NewVaultFS creates a VaultFS rooted at the given directory.
func NewVaultFS(root string) *VaultFS {
	return &VaultFS{root: root}
}

// Root returns the vault root directory.
func (v *VaultFS) Root() string {
	return v.root
}

// Resolve converts a vault-relative forward-slash path to an absolute
// platform path.
func (v *VaultFS) Resolve(relPath string) string {
	return filepath.Join(v.root, filepath.FromSlash(relPath))
}

// Exists reports whether a file or directory exists at the vault-relative
// path.
func (v *VaultFS) Exists(relPath string) bool {
	_, err := os.Stat(v.Resolve(relPath))
	return err == nil
}

// CreateDirectory creates the directory (and any missing parents) at the
// vault-relative path.
func (v *VaultFS) CreateDirectory(relPath string) error {
	if err := os.MkdirAll(v.Resolve(relPath), DefaultDirPermissions); err != nil {
		return fmt.Errorf("create directory %s: %w", relPath, err)
	}
	return nil
}

// WriteBinary writes data to the vault-relative path, overwriting any
// existing file.
func (v *VaultFS) WriteBinary(relPath string, data []byte) error {
	if err := os.WriteFile(v.Resolve(relPath), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write file %s: %w", relPath, err)
	}
	return nil
}

// DefaultVaultDir returns the vault root used when none is configured: the
// current working directory, on the assumption the tool is launched inside
// the vault. Falls back to the user's home directory if the cwd is unknown.
func DefaultVaultDir() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		return cwd, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return homeDir, nil
}

// NormalizeRelPath cleans a user-supplied vault-relative path to the
// forward-slash form used throughout the app.
func NormalizeRelPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.Trim(p, "/")
	return p
}
