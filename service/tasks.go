package service

import "github.com/convin-ai/csm-backend/models"

// CompletionDate decides whether a task status transition stamps
// completed_date. It returns today and true only on a transition into
// Completed from any other status; moves among non-completed statuses and
// updates that stay Completed leave the stored date untouched.
func CompletionDate(previous, next models.TaskStatus, today string) (string, bool) {
	if next == models.TaskStatusCompleted && previous != models.TaskStatusCompleted {
		return today, true
	}
	return "", false
}
