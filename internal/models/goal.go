package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal categories
const (
	CategoryHealth      = "health"
	CategoryLearning    = "learning"
	CategoryWork        = "work"
	CategoryMindfulness = "mindfulness"
	CategoryOther       = "other"
)

type Goal struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Category  string    `json:"category" gorm:"not null;default:'other'"` // health, learning, work, mindfulness, other
	Schedule  string    `json:"schedule"`                                 // free text, e.g. "Daily", "Mon, Wed, Fri"
	Time      string    `json:"time" gorm:"not null"`                     // HH:MM (24h), drives reminders
	Streak    int       `json:"streak" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Goal DTOs
type CreateGoalRequest struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category"`
	Schedule string `json:"schedule"`
	Time     string `json:"time" validate:"required"`
}

type ToggleTaskRequest struct {
	// Pointer distinguishes "no note sent" (toggle off) from "note sent"
	// (complete with a note, or edit the note of an already-completed day).
	Note *string `json:"note"`
}
