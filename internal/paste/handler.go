package paste

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vaultink/pasteimg/internal/classify"
	"github.com/vaultink/pasteimg/internal/clipboard"
	"github.com/vaultink/pasteimg/internal/config"
	"github.com/vaultink/pasteimg/internal/download"
	"github.com/vaultink/pasteimg/internal/model"
)

// NoticeDuration is how long user-visible notifications are shown.
const NoticeDuration = 4 * time.Second

// ConfirmMessage is the yes/no prompt shown before downloading.
const ConfirmMessage = "Download image and embed a local copy?"

// User-visible notification texts. Underlying error details go to the
// diagnostic log only.
const (
	NoticeEmbedFailed = "Failed to embed image"
	NoticeEmbedded    = "Image embedded"
)

// Editor inserts text at the user's cursor position.
type Editor interface {
	InsertAtCursor(text string) error
}

// Notifier surfaces a transient message to the user.
type Notifier interface {
	Show(message string, duration time.Duration)
}

// Confirmer presents a yes/no prompt and resolves once the user chooses.
// Dismissing the prompt without choosing resolves to false.
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// State of the paste handler. Purely informational: overlapping pastes are
// not mutually excluded, each proceeds on its own invocation-local data.
type State int

const (
	StateIdle State = iota
	StateProcessing
)

// Handler is the paste-event composition root.
type Handler struct {
	downloader download.Downloader
	editor     Editor
	notifier   Notifier
	confirmer  Confirmer
	snapshot   func() config.Snapshot
	log        *log.Logger

	stateMu sync.Mutex
	state   State
}

// NewHandler wires the paste pipeline. snapshot is called once per paste to
// capture the configuration that invocation observes.
func NewHandler(
	downloader download.Downloader,
	editor Editor,
	notifier Notifier,
	confirmer Confirmer,
	snapshot func() config.Snapshot,
	logger *log.Logger,
) *Handler {
	return &Handler{
		downloader: downloader,
		editor:     editor,
		notifier:   notifier,
		confirmer:  confirmer,
		snapshot:   snapshot,
		log:        logger,
	}
}

// State returns the handler's current state.
func (h *Handler) State() State {
	h.stateMu.Lock()
	defer h.stateMu.Unlock()
	return h.state
}

func (h *Handler) setState(s State) {
	h.stateMu.Lock()
	h.state = s
	h.stateMu.Unlock()
}

// HandlePaste runs the pipeline for one clipboard payload. It returns true
// when the paste was taken over (the payload was a direct image URL), false
// when the host's default paste behavior should proceed untouched.
func (h *Handler) HandlePaste(ctx context.Context, payload *clipboard.Payload) bool {
	text, ok := clipboard.URLFromPayload(payload)
	if !ok {
		return false
	}
	if !classify.IsImageURL(text) {
		return false
	}

	// From here on the default paste behavior is suppressed.
	h.setState(StateProcessing)
	defer h.setState(StateIdle)

	cfg := h.snapshot()
	task := h.downloader.Begin(text)

	if cfg.ConfirmBeforeEmbed {
		h.downloader.SetStatus(task.ID, model.TaskStatusConfirming)
		confirmed, err := h.confirmer.Confirm(ctx, ConfirmMessage)
		if err != nil {
			h.log.Warn("confirmation prompt failed, treating as no", "err", err)
			confirmed = false
		}
		if !confirmed {
			// The pasted URL text is not inserted. Documented behavior.
			h.downloader.Decline(task.ID)
			return true
		}
	}

	h.downloader.SetStatus(task.ID, model.TaskStatusDownloading)
	result, err := h.downloader.DownloadAndSave(ctx, model.DownloadRequest{
		SourceURL:       text,
		TargetDirectory: cfg.AttachmentFolder,
		Policy:          cfg.NamingPolicy(),
	})
	if err != nil {
		h.fail(task.ID, text, err)
		return true
	}

	markup := "![[" + result.RelativePath + "]]"
	if err := h.editor.InsertAtCursor(markup); err != nil {
		h.fail(task.ID, text, err)
		return true
	}

	h.downloader.Complete(task.ID, result.RelativePath)

	message := NoticeEmbedded
	if cfg.ShowFilePath {
		message = NoticeEmbedded + ": " + result.RelativePath
	}
	h.notifier.Show(message, NoticeDuration)
	return true
}

// fail records the error on the task, logs the underlying cause, and shows
// the generic failure notice.
func (h *Handler) fail(taskID, url string, err error) {
	h.log.Error("image embed failed", "url", url, "err", err)
	h.downloader.Fail(taskID, err)
	h.notifier.Show(NoticeEmbedFailed, NoticeDuration)
}
