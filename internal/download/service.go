package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vaultink/pasteimg/internal/model"
	"github.com/vaultink/pasteimg/internal/naming"
)

// Task ID prefix for embed tasks
const TaskIDPrefix = "embed-"

// Service handles image download-and-persist operations
type Service struct {
	storage    Storage
	client     *http.Client
	log        *log.Logger
	tasks      map[string]*model.EmbedTask
	tasksMutex sync.RWMutex
	onUpdate   func(*model.EmbedTask) // callback for UI updates
}

// NewService creates a new download service. When client is nil the shared
// default HTTP client is used.
func NewService(storage Storage, client *http.Client, logger *log.Logger) *Service {
	if client == nil {
		client = NewHTTPClient()
	}
	return &Service{
		storage: storage,
		client:  client,
		log:     logger,
		tasks:   make(map[string]*model.EmbedTask),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.EmbedTask)) {
	s.onUpdate = callback
}

// DownloadAndSave fetches the image named by the request and writes it into
// the target directory under a name generated from the naming policy. It
// returns the vault-relative path of the saved file. A failure at any step
// surfaces as a single error carrying the originating cause; nothing is
// retried.
//
// An existing file at the destination is overwritten silently. Repeated
// pastes of the same URL without a timestamp in the naming policy land on the
// same path.
func (s *Service) DownloadAndSave(ctx context.Context, req model.DownloadRequest) (model.DownloadResult, error) {
	if !s.storage.Exists(req.TargetDirectory) {
		if err := s.storage.CreateDirectory(req.TargetDirectory); err != nil {
			return model.DownloadResult{}, fmt.Errorf("create attachment folder: %w", err)
		}
	}

	filename := naming.Generate(req.SourceURL, req.Policy)
	fullPath := req.TargetDirectory + "/" + filename

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.SourceURL, nil)
	if err != nil {
		return model.DownloadResult{}, fmt.Errorf("build request for %s: %w", req.SourceURL, err)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return model.DownloadResult{}, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return model.DownloadResult{}, fmt.Errorf("image download failed: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.DownloadResult{}, fmt.Errorf("read image body: %w", err)
	}

	if err := s.storage.WriteBinary(fullPath, data); err != nil {
		return model.DownloadResult{}, fmt.Errorf("save image: %w", err)
	}

	s.log.Debug("image saved", "url", req.SourceURL, "path", fullPath, "bytes", len(data))
	return model.DownloadResult{RelativePath: fullPath}, nil
}

// Begin records a new embed task in the ledger and returns it.
func (s *Service) Begin(sourceURL string) *model.EmbedTask {
	task := &model.EmbedTask{
		ID:        generateTaskID(),
		SourceURL: sourceURL,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	snapshot := *task
	s.tasksMutex.Unlock()

	s.notifyUpdate(snapshot)
	return task
}

// SetStatus moves a task to a non-terminal status.
func (s *Service) SetStatus(id string, status model.TaskStatus) {
	s.updateTask(id, func(task *model.EmbedTask) {
		task.Status = status
	})
}

// Complete marks a task as finished with the saved path.
func (s *Service) Complete(id, relativePath string) {
	s.updateTask(id, func(task *model.EmbedTask) {
		task.Status = model.TaskStatusCompleted
		task.RelativePath = relativePath
		task.FinishedAt = time.Now()
	})
}

// Decline marks a task as declined at the confirmation prompt.
func (s *Service) Decline(id string) {
	s.updateTask(id, func(task *model.EmbedTask) {
		task.Status = model.TaskStatusDeclined
		task.FinishedAt = time.Now()
	})
}

// Fail marks a task as failed with the originating error message.
func (s *Service) Fail(id string, err error) {
	s.updateTask(id, func(task *model.EmbedTask) {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
		task.FinishedAt = time.Now()
	})
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.EmbedTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.EmbedTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.EmbedTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// updateTask applies fn to the task under the lock, then notifies.
func (s *Service) updateTask(id string, fn func(*model.EmbedTask)) {
	s.tasksMutex.Lock()
	task, exists := s.tasks[id]
	var snapshot model.EmbedTask
	if exists {
		fn(task)
		snapshot = *task
	}
	s.tasksMutex.Unlock()

	if exists {
		s.notifyUpdate(snapshot)
	}
}

// notifyUpdate hands a copy of the task to the update callback, so receivers
// on other goroutines never observe later mutations made under the lock.
func (s *Service) notifyUpdate(task model.EmbedTask) {
	if s.onUpdate != nil {
		s.onUpdate(&task)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for better uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
