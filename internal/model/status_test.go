package model

import "testing"

func TestTaskStatusString(t *testing.T) {
	if TaskStatusDownloading.String() != "Downloading" {
		t.Errorf("Expected 'Downloading', got '%s'", TaskStatusDownloading.String())
	}
}

func TestTaskStatusIsActive(t *testing.T) {
	activeStatuses := []TaskStatus{TaskStatusPending, TaskStatusConfirming, TaskStatusDownloading}
	for _, status := range activeStatuses {
		if !status.IsActive() {
			t.Errorf("Expected status %s to be active", status)
		}
		if status.IsFinished() {
			t.Errorf("Expected status %s to not be finished", status)
		}
	}
}

func TestTaskStatusIsFinished(t *testing.T) {
	finishedStatuses := []TaskStatus{TaskStatusCompleted, TaskStatusDeclined, TaskStatusError}
	for _, status := range finishedStatuses {
		if !status.IsFinished() {
			t.Errorf("Expected status %s to be finished", status)
		}
		if status.IsActive() {
			t.Errorf("Expected status %s to not be active", status)
		}
	}
}
