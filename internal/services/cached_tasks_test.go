package services_test

import (
	"testing"
	"time"

	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/cache"
	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/config"
	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/models"
	"github.com/Botz-Nithish/VitaSoft-Task-Management/internal/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CachedTaskServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *services.CachedTaskService

	owner uuid.UUID
}

func (suite *CachedTaskServiceTestSuite) SetupTest() {
	suite.db = openTestDB(&suite.Suite)

	mr := miniredis.RunT(suite.T())
	cacheConfig := cache.DefaultCacheConfig()
	cacheConfig.Addr = mr.Addr()

	suite.service = services.NewCachedTaskService(
		services.NewTaskService(),
		cache.NewRedisCache(cacheConfig),
		config.CacheConfig{
			Enabled:  true,
			TaskTTL:  time.Minute,
			ListTTL:  time.Minute,
			TypesTTL: time.Minute,
		},
	)

	suite.owner = uuid.Must(uuid.NewV4())
	user := models.User{ID: suite.owner, Name: "Owner", Email: "owner@x.com", Password: "hash"}
	suite.Require().NoError(suite.db.Create(&user).Error)
}

func (suite *CachedTaskServiceTestSuite) TestGetTaskByID_ServedFromCache() {
	task, err := suite.service.CreateTask(suite.db, suite.owner, services.CreateTaskInput{
		Title:       "T1",
		Description: "D1",
	})
	suite.Require().NoError(err)

	// Prime the cache, then change the row behind the service's back. The
	// second read must still return the cached value.
	first, err := suite.service.GetTaskByID(suite.db, suite.owner, task.ID)
	suite.Require().NoError(err)
	suite.Equal("T1", first.Title)

	suite.Require().NoError(suite.db.Model(&models.Task{}).Where("id = ?", task.ID).
		Update("title", "changed directly").Error)

	second, err := suite.service.GetTaskByID(suite.db, suite.owner, task.ID)
	suite.Require().NoError(err)
	suite.Equal("T1", second.Title)
}

func (suite *CachedTaskServiceTestSuite) TestUpdateTask_InvalidatesCache() {
	task, err := suite.service.CreateTask(suite.db, suite.owner, services.CreateTaskInput{
		Title:       "T1",
		Description: "D1",
	})
	suite.Require().NoError(err)

	_, err = suite.service.GetTaskByID(suite.db, suite.owner, task.ID)
	suite.Require().NoError(err)

	title := "T1b"
	_, err = suite.service.UpdateTask(suite.db, suite.owner, task.ID, services.UpdateTaskInput{
		Title: &title,
	})
	suite.Require().NoError(err)

	got, err := suite.service.GetTaskByID(suite.db, suite.owner, task.ID)
	suite.Require().NoError(err)
	suite.Equal("T1b", got.Title)
}

func (suite *CachedTaskServiceTestSuite) TestDeleteTask_InvalidatesListCache() {
	task, err := suite.service.CreateTask(suite.db, suite.owner, services.CreateTaskInput{
		Title:       "T1",
		Description: "D1",
	})
	suite.Require().NoError(err)

	tasks, err := suite.service.GetTasks(suite.db, suite.owner)
	suite.Require().NoError(err)
	suite.Len(tasks, 1)

	suite.Require().NoError(suite.service.DeleteTask(suite.db, suite.owner, task.ID))

	tasks, err = suite.service.GetTasks(suite.db, suite.owner)
	suite.Require().NoError(err)
	suite.Len(tasks, 0)
}

func (suite *CachedTaskServiceTestSuite) TestGetTaskTypes_RefreshedAfterCreate() {
	taskType := "Bug"
	_, err := suite.service.CreateTask(suite.db, suite.owner, services.CreateTaskInput{
		Title:       "T1",
		Description: "D1",
		TaskType:    &taskType,
	})
	suite.Require().NoError(err)

	types, err := suite.service.GetTaskTypes(suite.db, suite.owner)
	suite.Require().NoError(err)
	suite.Equal([]string{"Bug"}, types)

	other := "Feature"
	_, err = suite.service.CreateTask(suite.db, suite.owner, services.CreateTaskInput{
		Title:       "T2",
		Description: "D2",
		TaskType:    &other,
	})
	suite.Require().NoError(err)

	types, err = suite.service.GetTaskTypes(suite.db, suite.owner)
	suite.Require().NoError(err)
	suite.Equal([]string{"Bug", "Feature"}, types)
}

func (suite *CachedTaskServiceTestSuite) TestOwnershipIsolation_ThroughCache() {
	task, err := suite.service.CreateTask(suite.db, suite.owner, services.CreateTaskInput{
		Title:       "T1",
		Description: "D1",
	})
	suite.Require().NoError(err)

	// Warm the owner's cache entry, then read as a different user.
	_, err = suite.service.GetTaskByID(suite.db, suite.owner, task.ID)
	suite.Require().NoError(err)

	stranger := uuid.Must(uuid.NewV4())
	_, err = suite.service.GetTaskByID(suite.db, stranger, task.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestCachedTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CachedTaskServiceTestSuite))
}
