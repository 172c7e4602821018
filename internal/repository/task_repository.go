package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/planit-app/planit-api/internal/apperrors"
	"github.com/planit-app/planit-api/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository.
type GormTaskRepository struct {
	logger *zap.SugaredLogger
	db     *gorm.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(logger *zap.SugaredLogger, db *gorm.DB) TaskRepository {
	return &GormTaskRepository{logger: logger, db: db}
}

// Create inserts a task row. Uniqueness of (team, name) is deliberately
// not enforced; the store accepts duplicates.
func (r *GormTaskRepository) Create(task *models.Task) error {
	r.logger.Debugw("Create()", "team", task.TeamName, "name", task.Name)

	if err := r.db.Create(task).Error; err != nil {
		r.logger.Errorw("failed to create task", "team", task.TeamName, "name", task.Name, "error", err)
		return apperrors.Translate(err)
	}
	return nil
}

// Load returns team tasks and personal tasks in one query. The two
// branches of the OR are structurally different ownership concepts (team
// visibility vs personal ownership) unified in one relation, so they are
// expressed as a single grouped condition rather than two scans.
func (r *GormTaskRepository) Load(filter TaskFilter) ([]models.Task, error) {
	query := r.db.Where(
		"team_name = ? OR (task_target = ? AND user_email = ?)",
		filter.Team, filter.Target, filter.Email,
	)
	if filter.HideDone {
		query = query.Where("task_state <> ?", models.TaskStateDone)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, apperrors.Translate(err)
	}
	return tasks, nil
}

// Update writes only the supplied fields for (team, name). Personal tasks
// are addressed with an empty team name. An empty change issues no SQL.
func (r *GormTaskRepository) Update(team, name string, change TaskChange) error {
	updates := map[string]interface{}{}
	if change.State != nil {
		updates["task_state"] = *change.State
	}
	if change.Color != nil {
		updates["task_color"] = *change.Color
	}
	if len(updates) == 0 {
		return nil
	}

	r.logger.Debugw("Update()", "team", team, "name", name)

	err := r.db.Model(&models.Task{}).
		Where("team_name = ? AND task_name = ?", team, name).
		Updates(updates).Error
	if err != nil {
		r.logger.Errorw("failed to update task", "team", team, "name", name, "error", err)
		return apperrors.Translate(err)
	}
	return nil
}

// Delete removes the rows identified by the selector's mode.
func (r *GormTaskRepository) Delete(sel TaskSelector) error {
	if err := sel.validate(); err != nil {
		return err
	}

	r.logger.Debugw("Delete()", "team", sel.team, "email", sel.email, "name", sel.name, "personal", sel.personal)

	var err error
	if sel.personal {
		err = r.db.Where("user_email = ? AND task_name = ?", sel.email, sel.name).
			Delete(&models.Task{}).Error
	} else {
		err = r.db.Where("team_name = ? AND task_name = ?", sel.team, sel.name).
			Delete(&models.Task{}).Error
	}
	if err != nil {
		r.logger.Errorw("failed to delete task", "name", sel.name, "error", err)
		return apperrors.Translate(err)
	}
	return nil
}
