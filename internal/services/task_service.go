package services

import (
	"fmt"
	"time"

	"github.com/planit-app/planit-api/internal/apperrors"
	"github.com/planit-app/planit-api/internal/models"
	"github.com/planit-app/planit-api/internal/repository"
)

var (
	ErrTaskNameRequired = fmt.Errorf("%w: task name is required", apperrors.ErrInvalidArgument)
	ErrInvalidState     = fmt.Errorf("%w: task state must be one of TODO, DOING, DONE", apperrors.ErrInvalidArgument)
	ErrColorOutOfRange  = fmt.Errorf("%w: color code must be between %d and %d", apperrors.ErrInvalidArgument, models.ColorMin, models.ColorMax)
	ErrInvalidDate      = fmt.Errorf("%w: dates must use the YYYY-MM-DD format", apperrors.ErrInvalidArgument)
	ErrSelectorBoth     = fmt.Errorf("%w: supply either a team name or an owner email, not both", apperrors.ErrInvalidArgument)
	ErrSelectorNeither  = fmt.Errorf("%w: supply either a team name or an owner email", apperrors.ErrInvalidArgument)
)

const dateLayout = "2006-01-02"

// TaskService validates task operations before they reach storage. The
// checks mirror the schema's own constraints (the state enum and the
// bounded color palette); nothing stricter is imposed.
type TaskService struct {
	tasks repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

// CreateTaskInput represents input for creating a task. An empty TeamName
// makes it a personal task owned by (Target, UserEmail).
type CreateTaskInput struct {
	TeamName  string
	Name      string
	Start     string
	End       string
	State     models.TaskState
	Color     int
	Target    string
	UserEmail string
}

// UpdateTaskInput represents a partial update; nil fields are left as-is.
// Supplying neither field is a defined no-op.
type UpdateTaskInput struct {
	TeamName string
	Name     string
	State    *models.TaskState
	Color    *int
}

// DeleteTaskInput carries the raw identifying fields of a deletion
// request; exactly one of TeamName and UserEmail must be set.
type DeleteTaskInput struct {
	TeamName  string
	Name      string
	UserEmail string
}

// CreateTask validates and inserts a task.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.Name == "" {
		return nil, ErrTaskNameRequired
	}
	if input.State == "" {
		input.State = models.TaskStateTodo
	}
	if !input.State.Valid() {
		return nil, ErrInvalidState
	}
	if !models.ValidColor(input.Color) {
		return nil, ErrColorOutOfRange
	}
	for _, d := range []string{input.Start, input.End} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			return nil, ErrInvalidDate
		}
	}

	task := &models.Task{
		TeamName:  input.TeamName,
		Name:      input.Name,
		Start:     input.Start,
		End:       input.End,
		State:     input.State,
		Color:     input.Color,
		Target:    input.Target,
		UserEmail: input.UserEmail,
	}
	if err := s.tasks.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

// LoadTasks returns the visibility union for (team, target, email).
func (s *TaskService) LoadTasks(team, target, email string, hideDone bool) ([]models.Task, error) {
	return s.tasks.Load(repository.TaskFilter{
		Team:     team,
		Target:   target,
		Email:    email,
		HideDone: hideDone,
	})
}

// UpdateTask validates the supplied fields and applies the partial update.
func (s *TaskService) UpdateTask(input UpdateTaskInput) error {
	if input.Name == "" {
		return ErrTaskNameRequired
	}
	if input.State != nil && !input.State.Valid() {
		return ErrInvalidState
	}
	if input.Color != nil && !models.ValidColor(*input.Color) {
		return ErrColorOutOfRange
	}

	return s.tasks.Update(input.TeamName, input.Name, repository.TaskChange{
		State: input.State,
		Color: input.Color,
	})
}

// DeleteTask resolves the identifying fields into the deletion selector
// once, at this boundary, so the two modes cannot be mixed downstream.
func (s *TaskService) DeleteTask(input DeleteTaskInput) error {
	if input.Name == "" {
		return ErrTaskNameRequired
	}

	switch {
	case input.TeamName != "" && input.UserEmail != "":
		return ErrSelectorBoth
	case input.TeamName != "":
		return s.tasks.Delete(repository.TeamTaskSelector(input.TeamName, input.Name))
	case input.UserEmail != "":
		return s.tasks.Delete(repository.PersonalTaskSelector(input.UserEmail, input.Name))
	default:
		return ErrSelectorNeither
	}
}
