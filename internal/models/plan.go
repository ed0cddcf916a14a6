package models

import (
	"fmt"
	"regexp"
)

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTimeOfDay reports whether s is a 24-hour HH:MM string.
func ValidTimeOfDay(s string) bool {
	return timeOfDayRe.MatchString(s)
}

// PlanTask is one suggested habit in a generated plan.
type PlanTask struct {
	Title         string `json:"title"`
	Frequency     string `json:"frequency"`     // e.g. Daily, Weekly, Mon/Wed
	SuggestedTime string `json:"suggestedTime"` // HH:MM (24h)
	Reasoning     string `json:"reasoning"`
}

// PlanResponse is the structured schedule returned by the plan generator.
type PlanResponse struct {
	PlanName string     `json:"planName"`
	Tasks    []PlanTask `json:"tasks"`
}

// Validate rejects malformed model output instead of trusting its shape.
func (p *PlanResponse) Validate() error {
	if p.PlanName == "" {
		return fmt.Errorf("plan is missing a name")
	}
	if len(p.Tasks) == 0 {
		return fmt.Errorf("plan has no tasks")
	}
	for i, t := range p.Tasks {
		if t.Title == "" {
			return fmt.Errorf("task %d is missing a title", i)
		}
		if !ValidTimeOfDay(t.SuggestedTime) {
			return fmt.Errorf("task %d has invalid suggested time %q", i, t.SuggestedTime)
		}
	}
	return nil
}

// Plan DTOs
type PlanImage struct {
	Data     string `json:"data"` // base64, no data-URI prefix
	MimeType string `json:"mimeType"`
}

type GeneratePlanRequest struct {
	Prompt string     `json:"prompt"`
	Image  *PlanImage `json:"image"`
}
