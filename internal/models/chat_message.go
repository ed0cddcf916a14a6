package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chat roles
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// CoachGreeting opens every fresh transcript.
const CoachGreeting = "Hi! I'm your FocusFlow Coach. How are you feeling about your progress today?"

// ChatMessage is one entry in the append-only coach transcript.
type ChatMessage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Role      string    `json:"role" gorm:"not null"` // user, model
	Text      string    `json:"text" gorm:"not null"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	return nil
}

// ChatMessage DTO
type SendChatMessageRequest struct {
	Text string `json:"text" validate:"required"`
}
