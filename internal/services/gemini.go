package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"

	"github.com/ginhoang9748-cell/focusflow-api/internal/config"
	"github.com/ginhoang9748-cell/focusflow-api/internal/models"
	"google.golang.org/genai"
)

const coachPersona = "You are 'FocusFlow Coach', a supportive, energetic, and disciplined habit coach. " +
	"Keep answers concise (under 100 words) unless asked for a detailed plan. " +
	"Use emojis occasionally. Focus on consistency and incremental progress."

// CoachFallback is returned to the user when the coach call fails.
const CoachFallback = "I'm having trouble connecting to my coaching database right now. But don't give up!"

// CoachDefaultReply covers the rare empty model response.
const CoachDefaultReply = "Keep going! You're doing great."

// GeminiService wraps the hosted Gemini API for plan generation and
// coach chat.
type GeminiService struct {
	client *genai.Client
	model  string
}

// Global Gemini service instance
var Gemini *GeminiService

// InitGemini initializes the Gemini client. Returns nil gracefully if no
// API key is configured (dev mode); AI endpoints then report unavailable.
func InitGemini(cfg *config.Config) error {
	if cfg.GeminiAPIKey == "" {
		log.Println("Gemini: No API key configured, AI features disabled")
		Gemini = &GeminiService{client: nil, model: cfg.GeminiModel}
		return nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Gemini: Failed to initialize client: %v", err)
		Gemini = &GeminiService{client: nil, model: cfg.GeminiModel}
		return nil
	}

	Gemini = &GeminiService{client: client, model: cfg.GeminiModel}
	log.Println("Gemini: AI features enabled")
	return nil
}

// Enabled reports whether the hosted API is reachable at all.
func (s *GeminiService) Enabled() bool {
	return s != nil && s.client != nil
}

// planSchema constrains the model to the structured plan shape.
var planSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"planName": {Type: genai.TypeString},
		"tasks": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":         {Type: genai.TypeString, Description: "Short, actionable task name"},
					"frequency":     {Type: genai.TypeString, Description: "e.g., Daily, Weekly, Mon/Wed"},
					"suggestedTime": {Type: genai.TypeString, Description: "HH:MM format (24h)"},
					"reasoning":     {Type: genai.TypeString, Description: "Why this habit helps or where it was found in the schedule"},
				},
				Required: []string{"title", "frequency", "suggestedTime", "reasoning"},
			},
		},
	},
	Required: []string{"planName", "tasks"},
}

// GeneratePlan turns a free-text goal, or a timetable image with optional
// context, into a structured habit plan.
func (s *GeminiService) GeneratePlan(ctx context.Context, prompt string, image *models.PlanImage) (*models.PlanResponse, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("gemini is not configured")
	}

	var parts []*genai.Part
	if image != nil {
		raw, err := base64.StdEncoding.DecodeString(image.Data)
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: image.MimeType, Data: raw},
		})
		text := "Analyze this image of a timetable or schedule. Extract the specific events, classes, or tasks. "
		if prompt != "" {
			text += fmt.Sprintf("Also consider this context: %q. ", prompt)
		}
		text += "Create a structured plan based on the exact times found in the image."
		parts = append(parts, genai.NewPartFromText(text))
	} else {
		parts = append(parts, genai.NewPartFromText(fmt.Sprintf(
			"Create a structured habit plan for the user's goal: %q. "+
				"Break this down into 1-3 specific, actionable habits/tasks. "+
				"Suggest a time of day in HH:MM (24h) format that makes sense.", prompt)))
	}

	contents := []*genai.Content{{Role: genai.RoleUser, Parts: parts}}
	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   planSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	return parsePlan([]byte(resp.Text()))
}

// parsePlan decodes and validates the model's JSON payload.
func parsePlan(data []byte) (*models.PlanResponse, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty model response")
	}
	var plan models.PlanResponse
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("malformed plan payload: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan payload: %w", err)
	}
	return &plan, nil
}

// CoachReply sends the user's message to the coach with the prior
// transcript as chat history and returns the reply text.
func (s *GeminiService) CoachReply(ctx context.Context, history []models.ChatMessage, message string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("gemini is not configured")
	}

	chat, err := s.client.Chats.Create(ctx, s.model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(coachPersona, genai.RoleUser),
	}, chatHistory(history))
	if err != nil {
		return "", fmt.Errorf("create chat: %w", err)
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return CoachDefaultReply, nil
	}
	return text, nil
}

// chatHistory converts the stored transcript into Gemini chat turns.
func chatHistory(history []models.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		var role genai.Role = genai.RoleUser
		if msg.Role == models.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}
	return contents
}
