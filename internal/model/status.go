package model

// TaskStatus represents the status of an embed task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but the download has not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusConfirming means the task is waiting on the user's yes/no choice
	TaskStatusConfirming TaskStatus = "Confirming"

	// TaskStatusDownloading means the image fetch is in progress
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the image was saved and the embed inserted
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusDeclined means the user answered "no" at the confirmation prompt
	TaskStatusDeclined TaskStatus = "Declined"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusConfirming || ts == TaskStatusDownloading
}

// IsFinished returns true if the task is in a finished state (completed, declined, or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusDeclined || ts == TaskStatusError
}
