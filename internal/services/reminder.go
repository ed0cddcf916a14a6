package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ginhoang9748-cell/focusflow-api/internal/database"
	"github.com/ginhoang9748-cell/focusflow-api/internal/models"
)

// Event types sent to reminder subscribers
const (
	EventReminderDue     = "reminder_due"
	EventReminderCleared = "reminder_cleared"
)

// ReminderSound tells clients what to play when a reminder fires.
type ReminderSound struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// ReminderEvent is the JSON message sent to connected clients.
type ReminderEvent struct {
	Type    string         `json:"type"`
	GoalID  string         `json:"goalId,omitempty"`
	Message string         `json:"message,omitempty"`
	Time    string         `json:"time,omitempty"` // HH:MM
	Sound   *ReminderSound `json:"sound,omitempty"`
}

// Broadcaster delivers reminder events to whoever is listening.
// Satisfied by the WebSocket hub.
type Broadcaster interface {
	Broadcast(event interface{})
}

// ReminderScheduler polls wall-clock time once per second and fires a
// reminder when a goal's scheduled minute arrives and it has not been
// completed today.
type ReminderScheduler struct {
	sink Broadcaster
	now  func() time.Time

	// lastFired is the goalID-HH:MM pair most recently announced. It
	// guards against re-firing within the same minute and resets when
	// the minute rolls over, so the same goal can fire again on a
	// later day.
	lastFired  string
	lastMinute string
	// active is the goal currently shown as due, "" when no banner is up.
	active string
}

func NewReminderScheduler(sink Broadcaster) *ReminderScheduler {
	return &ReminderScheduler{
		sink: sink,
		now:  time.Now,
	}
}

// Run ticks every second until the context is canceled.
func (r *ReminderScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	log.Println("Reminder: scheduler started")
	for {
		select {
		case <-ctx.Done():
			log.Println("Reminder: scheduler stopped")
			return
		case <-ticker.C:
			r.Tick()
		}
	}
}

// Tick runs a single reminder check.
func (r *ReminderScheduler) Tick() {
	now := r.now()
	currentHM := now.Format("15:04")
	today := now.Format(models.DateLayout)

	if currentHM != r.lastMinute {
		r.lastMinute = currentHM
		r.lastFired = ""
	}

	// First goal in list order whose time matches the current minute.
	var goal models.Goal
	if err := database.DB.Where("time = ?", currentHM).Order("created_at ASC").First(&goal).Error; err != nil {
		r.clear()
		return
	}

	var done int64
	database.DB.Model(&models.TaskLog{}).
		Where("goal_id = ? AND date = ? AND completed = ?", goal.ID, today, true).
		Count(&done)
	if done > 0 {
		r.clear()
		return
	}

	key := goal.ID.String() + "-" + currentHM
	if r.lastFired == key {
		return
	}
	r.lastFired = key
	r.active = goal.ID.String()

	event := ReminderEvent{
		Type:    EventReminderDue,
		GoalID:  goal.ID.String(),
		Message: fmt.Sprintf("Time to %s!", goal.Title),
		Time:    currentHM,
		Sound:   reminderSound(),
	}
	log.Printf("Reminder: due for goal %s at %s", goal.ID, currentHM)
	r.sink.Broadcast(event)
}

// clear withdraws the active reminder banner, if any.
func (r *ReminderScheduler) clear() {
	if r.active == "" {
		return
	}
	goalID := r.active
	r.active = ""
	r.sink.Broadcast(ReminderEvent{
		Type:   EventReminderCleared,
		GoalID: goalID,
	})
}

// reminderSound resolves the configured sound for a due reminder.
// Returns nil when sound is disabled or the source is unusable; the
// reminder still goes out without it.
func reminderSound() *ReminderSound {
	var settings models.SoundSettings
	if err := database.DB.First(&settings, 1).Error; err != nil {
		log.Printf("Reminder: failed to load sound settings: %v", err)
		return nil
	}
	if !settings.Enabled {
		return nil
	}
	if settings.Type == models.SoundTypeCustom {
		if err := validateDataURI(settings.URL); err != nil {
			log.Printf("Reminder: bad custom sound source: %v", err)
			return nil
		}
	}
	return &ReminderSound{URL: settings.URL, Name: settings.Name}
}

// validateDataURI checks that an embedded sound source actually decodes.
func validateDataURI(uri string) error {
	if !strings.HasPrefix(uri, "data:") {
		return fmt.Errorf("not a data URI")
	}
	_, payload, found := strings.Cut(uri, ",")
	if !found {
		return fmt.Errorf("data URI has no payload")
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return fmt.Errorf("data URI payload is not valid base64: %w", err)
	}
	return nil
}
