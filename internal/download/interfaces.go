package download

import (
	"context"

	"github.com/vaultink/pasteimg/internal/model"
)

// Storage is the vault-side persistence collaborator. All paths are
// vault-relative and forward-slash separated.
type Storage interface {
	Exists(path string) bool
	CreateDirectory(path string) error
	WriteBinary(path string, data []byte) error
}

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.EmbedTask))

	// DownloadAndSave fetches the image named by the request and persists
	// it under the target directory with a name derived from the naming
	// policy, returning the vault-relative path of the saved file.
	DownloadAndSave(ctx context.Context, req model.DownloadRequest) (model.DownloadResult, error)

	// Task ledger for the recent-embeds list
	Begin(sourceURL string) *model.EmbedTask
	SetStatus(id string, status model.TaskStatus)
	Complete(id, relativePath string)
	Decline(id string)
	Fail(id string, err error)
	GetTask(id string) (*model.EmbedTask, bool)
	GetAllTasks() []*model.EmbedTask
}
