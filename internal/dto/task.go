package dto

import "github.com/planit-app/planit-api/internal/models"

// TaskPayload mirrors the task creation request body. An empty team_name
// marks a personal task owned by (task_target, user_email).
type TaskPayload struct {
	TeamName  string           `json:"team_name"`
	Name      string           `json:"task_name" binding:"required"`
	Start     string           `json:"task_start"`
	End       string           `json:"task_end"`
	State     models.TaskState `json:"task_state"`
	Color     int              `json:"task_color"`
	Target    string           `json:"task_target"`
	UserEmail string           `json:"user_email"`
}

// TaskUpdatePayload is the partial update body; absent fields are left
// untouched. Sending neither field is accepted and changes nothing.
type TaskUpdatePayload struct {
	TeamName string            `json:"team_name"`
	Name     string            `json:"task_name" binding:"required"`
	State    *models.TaskState `json:"task_state"`
	Color    *int              `json:"task_color"`
}
