package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the calendar-date key format for task logs.
const DateLayout = "2006-01-02"

// TaskLog records that a goal was completed on a specific calendar date.
// At most one log exists per (goal, date); unchecking a goal deletes the
// row rather than flipping Completed to false.
type TaskLog struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	GoalID    uuid.UUID `json:"goalId" gorm:"type:uuid;not null;uniqueIndex:idx_task_logs_goal_date"`
	Date      string    `json:"date" gorm:"not null;uniqueIndex:idx_task_logs_goal_date"` // YYYY-MM-DD
	Completed bool      `json:"completed" gorm:"not null;default:true"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}

func (t *TaskLog) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now()
	}
	return nil
}
