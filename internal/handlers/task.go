package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/planit-app/planit-api/internal/apperrors"
	"github.com/planit-app/planit-api/internal/dto"
	"github.com/planit-app/planit-api/internal/metrics"
	"github.com/planit-app/planit-api/internal/services"
)

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// CreateTask inserts a team or personal task.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.TaskPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "")
		return
	}

	start := time.Now()
	task, err := h.tasks.CreateTask(services.CreateTaskInput{
		TeamName:  req.TeamName,
		Name:      req.Name,
		Start:     req.Start,
		End:       req.End,
		State:     req.State,
		Color:     req.Color,
		Target:    req.Target,
		UserEmail: req.UserEmail,
	})
	metrics.ObserveStoreOp("create_task", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks returns the union of the team's tasks and the caller's
// personal tasks, per the team/target/email query params. Finished
// tasks are hidden unless hide_done=false is passed.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	hideDone, _ := strconv.ParseBool(c.DefaultQuery("hide_done", "true"))

	start := time.Now()
	tasks, err := h.tasks.LoadTasks(c.Query("team"), c.Query("target"), c.Query("email"), hideDone)
	metrics.ObserveStoreOp("load_tasks", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": tasks})
}

// UpdateTask applies a partial state/color update.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.TaskUpdatePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "")
		return
	}

	start := time.Now()
	err := h.tasks.UpdateTask(services.UpdateTaskInput{
		TeamName: req.TeamName,
		Name:     req.Name,
		State:    req.State,
		Color:    req.Color,
	})
	metrics.ObserveStoreOp("update_task", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTask removes tasks in one of two mutually exclusive modes:
// team-scoped via ?team=&name=, personal via ?email=&name=.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	start := time.Now()
	err := h.tasks.DeleteTask(services.DeleteTaskInput{
		TeamName:  c.Query("team"),
		Name:      c.Query("name"),
		UserEmail: c.Query("email"),
	})
	metrics.ObserveStoreOp("delete_task", start, err)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
