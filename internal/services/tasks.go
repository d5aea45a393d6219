package services

import (
	"time"

	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type CreateTaskInput struct {
	Title       string
	Description string
	TaskType    *string
	Status      *models.TaskStatus
	Priority    *models.TaskPriority
	DueDate     *time.Time
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	TaskType    *string
	Status      *models.TaskStatus
	Priority    *models.TaskPriority
	DueDate     *time.Time
	ClearDue    bool
}

// TaskService operations are all scoped by the owning user id. A lookup miss
// and a non-owned row are indistinguishable: both surface
// gorm.ErrRecordNotFound.
type TaskService interface {
	CreateTask(db *gorm.DB, userID uuid.UUID, input CreateTaskInput) (models.Task, error)
	GetTasks(db *gorm.DB, userID uuid.UUID) ([]models.Task, error)
	GetTaskByID(db *gorm.DB, userID, taskID uuid.UUID) (models.Task, error)
	UpdateTask(db *gorm.DB, userID, taskID uuid.UUID, input UpdateTaskInput) (models.Task, error)
	DeleteTask(db *gorm.DB, userID, taskID uuid.UUID) error
	GetTaskTypes(db *gorm.DB, userID uuid.UUID) ([]string, error)
}

type TaskServiceImpl struct{}

func NewTaskService() *TaskServiceImpl {
	return &TaskServiceImpl{}
}

func (s *TaskServiceImpl) CreateTask(db *gorm.DB, userID uuid.UUID, input CreateTaskInput) (models.Task, error) {
	task := models.Task{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		TaskType:    input.TaskType,
		Status:      models.StatusNotStarted,
		Priority:    models.PriorityMedium,
		DueDate:     input.DueDate,
	}

	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}

	if err := db.Create(&task).Error; err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (s *TaskServiceImpl) GetTasks(db *gorm.DB, userID uuid.UUID) ([]models.Task, error) {
	tasks := []models.Task{}
	err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) GetTaskByID(db *gorm.DB, userID, taskID uuid.UUID) (models.Task, error) {
	var task models.Task
	err := db.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask applies only the fields present in the input. When the input
// carries a status, CompletedAt follows it: FINISHED stamps the current time,
// anything else clears the stamp. An update without a status never touches
// CompletedAt.
func (s *TaskServiceImpl) UpdateTask(db *gorm.DB, userID, taskID uuid.UUID, input UpdateTaskInput) (models.Task, error) {
	task, err := s.GetTaskByID(db, userID, taskID)
	if err != nil {
		return models.Task{}, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.TaskType != nil {
		task.TaskType = input.TaskType
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	} else if input.ClearDue {
		task.DueDate = nil
	}

	if input.Status != nil {
		task.Status = *input.Status
		if *input.Status == models.StatusFinished {
			now := time.Now()
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
	}

	if err := db.Save(&task).Error; err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(db *gorm.DB, userID, taskID uuid.UUID) error {
	task, err := s.GetTaskByID(db, userID, taskID)
	if err != nil {
		return err
	}
	return db.Delete(&task).Error
}

// GetTaskTypes lists the distinct non-null type labels across the owner's
// tasks, alphabetically. Types are free text, not a separate entity.
func (s *TaskServiceImpl) GetTaskTypes(db *gorm.DB, userID uuid.UUID) ([]string, error) {
	types := []string{}
	err := db.Model(&models.Task{}).
		Distinct("task_type").
		Where("user_id = ? AND task_type IS NOT NULL", userID).
		Order("task_type asc").
		Pluck("task_type", &types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}
