package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/devillabs/cms-api/internal/core/domain/chat"
	"github.com/devillabs/cms-api/internal/core/ports"
	"github.com/sirupsen/logrus"
)

const maxSuggestions = 3

// SystemPrompt frames every conversation with the site assistant.
const SystemPrompt = `You are Techno Boyz, the AI assistant for Devil Labs and Vicky Kumar (vickyiitp.tech).

Personality: confident, energetic and tech-savvy; mostly professional with a light playful edge.

Purpose: answer questions about Vicky Kumar, Devil Labs, Team MVA and their tools, products and services;
help visitors navigate the site; share product details, pricing and demo links; point people to the
contact form when they want to hire or get a quote.

Background: Vicky Kumar is an AI developer from IIT Patna and founder of Devil Labs and Team MVA,
working on generative and agentic AI systems, cybersecurity tools and full-stack web apps
(Python, Flask, MERN, Gemini API, Google Cloud, Three.js, React). Services include AI model integration,
custom app development, cybersecurity audits, API development and web app development.

Guidelines: keep answers short (2-4 sentences unless the question is technical), lead with the direct answer,
suggest a next step, say so when you do not know, and never invent products, prices or features.`

type keywordRule struct {
	words []string
	items []string
}

var suggestionRules = []keywordRule{
	{words: []string{"tool", "product", "app"}, items: []string{"Show me AI tools", "What cybersecurity apps are available?"}},
	{words: []string{"service", "price", "cost", "hire"}, items: []string{"View all services", "Request a quote"}},
	{words: []string{"about", "who", "vicky"}, items: []string{"Download resume", "View projects"}},
	{words: []string{"blog", "article", "tutorial"}, items: []string{"Latest blog posts", "Show tutorials"}},
}

var defaultSuggestions = []string{"Explore AI tools", "View services", "Contact Devil Labs"}

type actionRule struct {
	words  []string
	action chat.Action
}

var actionRules = []actionRule{
	{words: []string{"resume", "cv"}, action: chat.Action{Type: "download", Label: "Download Resume", URL: "/resume/vicky-kumar-resume.pdf"}},
	{words: []string{"contact", "hire", "quote"}, action: chat.Action{Type: "navigate", Label: "Contact Us", URL: "/contact"}},
	{words: []string{"tool", "product"}, action: chat.Action{Type: "navigate", Label: "Explore Tools", URL: "/devillabs"}},
}

// ChatService relays visitor messages to the language model with recent history.
type ChatService struct {
	model      ports.ChatModel
	sanitizer  ports.Sanitizer
	maxHistory int
	configured bool
	logger     *logrus.Logger
}

func NewChatService(model ports.ChatModel, sanitizer ports.Sanitizer, maxHistory int, configured bool, logger *logrus.Logger) *ChatService {
	if maxHistory <= 0 {
		maxHistory = 6
	}
	return &ChatService{model: model, sanitizer: sanitizer, maxHistory: maxHistory, configured: configured, logger: logger}
}

func (s *ChatService) Configured() bool { return s.configured }

func (s *ChatService) Reply(ctx context.Context, req *chat.Request) (*chat.Response, error) {
	msg := s.sanitizer.Sanitize(req.Message)
	if msg == "" {
		return nil, chat.ErrEmptyMessage
	}
	if !s.configured {
		return nil, chat.ErrNotConfigured
	}

	turns := append(TrimHistory(req.History, s.maxHistory), chat.Message{Role: chat.RoleUser, Content: msg})
	text, err := s.model.Generate(ctx, SystemPrompt, turns)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"user_id": req.UserID, "history": len(req.History)}).WithError(err).Error("chat generation failed")
		}
		return nil, fmt.Errorf("generate reply: %w", err)
	}
	return &chat.Response{
		Response:    text,
		Suggestions: Suggestions(msg),
		Actions:     Actions(msg),
	}, nil
}

// TrimHistory keeps the last limit messages and maps every non-user role to the model role.
func TrimHistory(history []chat.Message, limit int) []chat.Message {
	if len(history) > limit {
		history = history[len(history)-limit:]
	}
	out := make([]chat.Message, 0, len(history)+1)
	for _, m := range history {
		role := chat.RoleModel
		if m.Role == chat.RoleUser {
			role = chat.RoleUser
		}
		out = append(out, chat.Message{Role: role, Content: m.Content})
	}
	return out
}

// Suggestions picks up to three follow-up prompts from keywords in msg.
func Suggestions(msg string) []string {
	lower := strings.ToLower(msg)
	var out []string
	for _, r := range suggestionRules {
		if containsAny(lower, r.words) {
			out = append(out, r.items...)
		}
	}
	if len(out) == 0 {
		out = append(out, defaultSuggestions...)
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// Actions returns quick-action buttons matching keywords in msg.
func Actions(msg string) []chat.Action {
	lower := strings.ToLower(msg)
	out := []chat.Action{}
	for _, r := range actionRules {
		if containsAny(lower, r.words) {
			out = append(out, r.action)
		}
	}
	return out
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
