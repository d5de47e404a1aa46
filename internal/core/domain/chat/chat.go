package chat

import "errors"

// ErrEmptyMessage is returned when the message is blank after sanitisation.
var ErrEmptyMessage = errors.New("message cannot be empty")

// ErrNotConfigured is returned when no model provider key is set.
var ErrNotConfigured = errors.New("chat provider not configured")

const (
	RoleUser  = "user"
	RoleModel = "model"
)

type Message struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content"`
}

type Request struct {
	Message string    `json:"message" validate:"required,min=1,max=2000"`
	History []Message `json:"history" validate:"dive"`
	UserID  string    `json:"user_id,omitempty"`
}

// Action is a quick-action button suggested alongside a reply.
type Action struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

type Response struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
	Actions     []Action `json:"actions"`
}
