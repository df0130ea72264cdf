package handlers

import (
	"errors"
	"time"

	"github.com/Chaitanyahoon/focusarenaa-sub001/internal/services"
	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	tasks := router.Group("/tasks", authMiddleware)
	{
		tasks.POST("", h.CreateTask)
		tasks.GET("", h.ListTasks)
		tasks.GET("/:id", h.GetTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.ArchiveTask)
		tasks.POST("/:id/complete", h.CompleteTask)
	}
}

// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body models.Task true "Task"
// @Success 200 {object} models.Task
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	task := BindModel[models.Task](c)
	if task == nil {
		return
	}

	task.PlayerID = PlayerID(c)
	if err := h.taskService.CreateTask(c.Request.Context(), task); err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, task)
}

// @Summary List tasks
// @Tags tasks
// @Produce json
// @Security Bearer
// @Param status query string false "Filter by status (pending, completed, archived)"
// @Success 200 {array} models.Task
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	status := models.TaskStatus(c.Query("status"))
	tasks, err := h.taskService.ListTasks(c.Request.Context(), PlayerID(c), status)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	Ok(c, tasks)
}

// @Summary Get a task
// @Tags tasks
// @Produce json
// @Security Bearer
// @Param id path string true "Task ID"
// @Success 200 {object} models.Task
// @Failure 404 {object} ErrorResponse "Task not found"
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.GetTask(c.Request.Context(), PlayerID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrTaskNotOwned) {
			NotFound(c, "task not found")
			return
		}
		BadRequest(c, err.Error())
		return
	} else if task == nil {
		NotFound(c, "task not found")
		return
	}

	Ok(c, task)
}

// @Summary Update a pending task
// @Tags tasks
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Task ID"
// @Param request body models.Task true "Task"
// @Success 200 {object} models.Task
// @Failure 404 {object} ErrorResponse "Task not found"
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	task := BindModel[models.Task](c)
	if task == nil {
		return
	}

	task.ID = c.Param("id")
	task.PlayerID = PlayerID(c)
	if err := h.taskService.UpdateTask(c.Request.Context(), task); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			NotFound(c, "task not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}

	Ok(c, task)
}

// @Summary Archive a pending task
// @Tags tasks
// @Produce json
// @Security Bearer
// @Param id path string true "Task ID"
// @Success 200 {string} string "archived"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Router /tasks/{id} [delete]
func (h *TaskHandler) ArchiveTask(c *gin.Context) {
	if err := h.taskService.ArchiveTask(c.Request.Context(), PlayerID(c), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			NotFound(c, "task not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}

	Ok(c, "archived")
}

// @Summary Complete a task
// @Description Advances the streak, awards XP and coins, detects level-ups and badge unlocks.
// @Tags tasks
// @Produce json
// @Security Bearer
// @Param id path string true "Task ID"
// @Success 200 {object} models.TaskCompleteResult
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 409 {object} ErrorResponse "Task already completed"
// @Router /tasks/{id}/complete [post]
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	result, err := h.taskService.CompleteTask(c.Request.Context(), PlayerID(c), c.Param("id"), time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound), errors.Is(err, services.ErrTaskNotOwned):
			NotFound(c, "task not found")
		case errors.Is(err, services.ErrTaskAlreadyCompleted):
			Conflict(c, err.Error())
		default:
			BadRequest(c, err.Error())
		}
		return
	}

	Ok(c, result)
}
