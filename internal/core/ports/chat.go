package ports

import (
	"context"

	"github.com/devillabs/cms-api/internal/core/domain/chat"
)

// ChatModel generates a reply from a system prompt and a role-tagged conversation.
type ChatModel interface {
	Generate(ctx context.Context, systemPrompt string, turns []chat.Message) (string, error)
}

type ChatService interface {
	Reply(ctx context.Context, req *chat.Request) (*chat.Response, error)
	Configured() bool
}
