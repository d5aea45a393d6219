package services

import (
	"context"
	"fmt"
	"log"

	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/cache"
	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/config"
	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/models"

	"github.com/gofrs/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// CachedTaskService decorates a TaskService with a redis cache-aside layer.
// Every key embeds the owning user id, so cached reads carry the same
// ownership scoping as the database queries they replace. Cache failures
// degrade to the database path.
type CachedTaskService struct {
	taskService TaskService
	cache       *cache.RedisCache
	cfg         config.CacheConfig
	group       singleflight.Group
}

func NewCachedTaskService(taskService TaskService, cacheInstance *cache.RedisCache, cfg config.CacheConfig) *CachedTaskService {
	return &CachedTaskService{
		taskService: taskService,
		cache:       cacheInstance,
		cfg:         cfg,
	}
}

func taskKey(userID, taskID uuid.UUID) string {
	return fmt.Sprintf("task:%s:%s", userID, taskID)
}

func userTasksKey(userID uuid.UUID) string {
	return fmt.Sprintf("user_tasks:%s", userID)
}

func taskTypesKey(userID uuid.UUID) string {
	return fmt.Sprintf("task_types:%s", userID)
}

func (s *CachedTaskService) invalidateOwner(userID uuid.UUID) {
	ctx := context.Background()
	if err := s.cache.DeletePattern(ctx, fmt.Sprintf("task:%s:*", userID)); err != nil {
		log.Printf("cache: failed to invalidate task keys for user %s: %v", userID, err)
	}
	if err := s.cache.Delete(ctx, userTasksKey(userID), taskTypesKey(userID)); err != nil {
		log.Printf("cache: failed to invalidate list keys for user %s: %v", userID, err)
	}
}

func (s *CachedTaskService) CreateTask(db *gorm.DB, userID uuid.UUID, input CreateTaskInput) (models.Task, error) {
	task, err := s.taskService.CreateTask(db, userID, input)
	if err != nil {
		return task, err
	}

	s.invalidateOwner(userID)
	return task, nil
}

func (s *CachedTaskService) GetTaskByID(db *gorm.DB, userID, taskID uuid.UUID) (models.Task, error) {
	ctx := context.Background()
	key := taskKey(userID, taskID)

	var cached models.Task
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	// Singleflight collapses concurrent misses for the same row into one
	// database query.
	val, err, _ := s.group.Do(key, func() (interface{}, error) {
		task, err := s.taskService.GetTaskByID(db, userID, taskID)
		if err != nil {
			return models.Task{}, err
		}
		if err := s.cache.Set(ctx, key, task, s.cfg.TaskTTL); err != nil {
			log.Printf("cache: failed to store %s: %v", key, err)
		}
		return task, nil
	})
	if err != nil {
		return models.Task{}, err
	}

	return val.(models.Task), nil
}

func (s *CachedTaskService) GetTasks(db *gorm.DB, userID uuid.UUID) ([]models.Task, error) {
	ctx := context.Background()
	key := userTasksKey(userID)

	var cached []models.Task
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	val, err, _ := s.group.Do(key, func() (interface{}, error) {
		tasks, err := s.taskService.GetTasks(db, userID)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, key, tasks, s.cfg.ListTTL); err != nil {
			log.Printf("cache: failed to store %s: %v", key, err)
		}
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}

	return val.([]models.Task), nil
}

func (s *CachedTaskService) GetTaskTypes(db *gorm.DB, userID uuid.UUID) ([]string, error) {
	ctx := context.Background()
	key := taskTypesKey(userID)

	var cached []string
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	val, err, _ := s.group.Do(key, func() (interface{}, error) {
		types, err := s.taskService.GetTaskTypes(db, userID)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, key, types, s.cfg.TypesTTL); err != nil {
			log.Printf("cache: failed to store %s: %v", key, err)
		}
		return types, nil
	})
	if err != nil {
		return nil, err
	}

	return val.([]string), nil
}

func (s *CachedTaskService) UpdateTask(db *gorm.DB, userID, taskID uuid.UUID, input UpdateTaskInput) (models.Task, error) {
	task, err := s.taskService.UpdateTask(db, userID, taskID, input)
	if err != nil {
		return task, err
	}

	s.invalidateOwner(userID)
	return task, nil
}

func (s *CachedTaskService) DeleteTask(db *gorm.DB, userID, taskID uuid.UUID) error {
	if err := s.taskService.DeleteTask(db, userID, taskID); err != nil {
		return err
	}

	s.invalidateOwner(userID)
	return nil
}
