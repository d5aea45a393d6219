package models

import (
	"time"

	"github.com/gofrs/uuid"
)

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "NOT_STARTED"
	StatusStarted    TaskStatus = "STARTED"
	StatusFinished   TaskStatus = "FINISHED"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusStarted, StatusFinished:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task rows are always owned by exactly one user; UserID never changes after
// creation. CompletedAt is system-managed: set when status transitions to
// FINISHED, cleared when it transitions anywhere else.
type Task struct {
	ID          uuid.UUID    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      uuid.UUID    `json:"userId" gorm:"type:uuid;not null;index"`
	Title       string       `json:"title" gorm:"size:255;not null"`
	Description string       `json:"description" gorm:"not null"`
	TaskType    *string      `json:"taskType" gorm:"size:100"`
	Status      TaskStatus   `json:"status" gorm:"size:20;not null;default:'NOT_STARTED'"`
	Priority    TaskPriority `json:"priority" gorm:"size:20;not null;default:'MEDIUM'"`
	DueDate     *time.Time   `json:"dueDate"`
	CompletedAt *time.Time   `json:"completedAt"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}
