package handlers

import (
	"errors"
	"net/http"

	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/middleware"
	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/models"
	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type TaskHandler struct {
	db          *gorm.DB
	taskService services.TaskService
}

func NewTaskHandler(db *gorm.DB, taskService services.TaskService) *TaskHandler {
	return &TaskHandler{db: db, taskService: taskService}
}

type CreateTaskRequest struct {
	Title       string               `json:"title" binding:"required,max=255"`
	Description string               `json:"description" binding:"required"`
	TaskType    *string              `json:"taskType" binding:"omitempty,min=1,max=100"`
	Status      *models.TaskStatus   `json:"status" binding:"omitempty,oneof=NOT_STARTED STARTED FINISHED"`
	Priority    *models.TaskPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     *string              `json:"dueDate"`
}

type UpdateTaskRequest struct {
	Title       *string              `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string              `json:"description" binding:"omitempty,min=1"`
	TaskType    *string              `json:"taskType" binding:"omitempty,min=1,max=100"`
	Status      *models.TaskStatus   `json:"status" binding:"omitempty,oneof=NOT_STARTED STARTED FINISHED"`
	Priority    *models.TaskPriority `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	DueDate     *string              `json:"dueDate"`
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateTaskRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": err.Error(),
		})
		return
	}

	input := services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		TaskType:    req.TaskType,
		Status:      req.Status,
		Priority:    req.Priority,
	}

	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"details": "dueDate must be a valid ISO-8601 date string",
			})
			return
		}
		input.DueDate = &dueDate
	}

	task, err := h.taskService.CreateTask(h.db, userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to create task",
		})
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	tasks, err := h.taskService.GetTasks(h.db, userID)
	if err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) GetTaskTypes(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	types, err := h.taskService.GetTaskTypes(h.db, userID)
	if err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, types)
}

func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTaskByID(h.db, userID, taskID)
	if err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := bindStrictJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": err.Error(),
		})
		return
	}

	input := services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		TaskType:    req.TaskType,
		Status:      req.Status,
		Priority:    req.Priority,
	}

	if req.DueDate != nil {
		if *req.DueDate == "" {
			input.ClearDue = true
		} else {
			dueDate, err := parseDueDate(*req.DueDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":   "Validation failed",
					"details": "dueDate must be a valid ISO-8601 date string",
				})
				return
			}
			input.DueDate = &dueDate
		}
	}

	task, err := h.taskService.UpdateTask(h.db, userID, taskID, input)
	if err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(h.db, userID, taskID); err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// taskIDParam parses the :id route param. A malformed id maps to 404, the
// same answer as a well-formed id that matches nothing.
func taskIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return uuid.Nil, false
	}
	return id, true
}

func handleTaskError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "failed to process task request",
	})
}
