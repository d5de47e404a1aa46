package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/devillabs/cms-api/internal/application/services"
	"github.com/devillabs/cms-api/internal/core/domain/chat"
	"github.com/devillabs/cms-api/internal/utils"
	"github.com/devillabs/cms-api/test/mocks"
	"github.com/stretchr/testify/require"
)

func TestChatService_ReplyForwardsTrimmedHistory(t *testing.T) {
	var gotPrompt string
	var gotTurns []chat.Message
	model := &mocks.ChatModelMock{
		GenerateFn: func(ctx context.Context, systemPrompt string, turns []chat.Message) (string, error) {
			gotPrompt, gotTurns = systemPrompt, turns
			return "We build AI tools.", nil
		},
	}
	svc := services.NewChatService(model, utils.NewSanitizer(), 6, true, nil)

	var history []chat.Message
	for i := 0; i < 8; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		history = append(history, chat.Message{Role: role, Content: fmt.Sprintf("m%d", i)})
	}

	resp, err := svc.Reply(context.Background(), &chat.Request{Message: "  What tools do you have? ", History: history})
	require.NoError(t, err)
	require.Equal(t, "We build AI tools.", resp.Response)
	require.Equal(t, services.SystemPrompt, gotPrompt)

	require.Len(t, gotTurns, 7)
	require.Equal(t, "m2", gotTurns[0].Content)
	require.Equal(t, chat.RoleUser, gotTurns[0].Role)
	require.Equal(t, chat.RoleModel, gotTurns[1].Role)
	require.Equal(t, chat.Message{Role: chat.RoleUser, Content: "What tools do you have?"}, gotTurns[6])

	require.Equal(t, []string{"Show me AI tools", "What cybersecurity apps are available?"}, resp.Suggestions)
	require.Len(t, resp.Actions, 1)
	require.Equal(t, "/devillabs", resp.Actions[0].URL)
}

func TestChatService_RejectsMessageEmptyAfterSanitising(t *testing.T) {
	called := false
	model := &mocks.ChatModelMock{GenerateFn: func(context.Context, string, []chat.Message) (string, error) {
		called = true
		return "", nil
	}}
	svc := services.NewChatService(model, utils.NewSanitizer(), 6, true, nil)

	_, err := svc.Reply(context.Background(), &chat.Request{Message: "<script>alert(1)</script>"})
	require.ErrorIs(t, err, chat.ErrEmptyMessage)
	require.False(t, called)
}

func TestChatService_NotConfigured(t *testing.T) {
	svc := services.NewChatService(&mocks.ChatModelMock{}, &mocks.SanitizerMock{}, 6, false, nil)
	require.False(t, svc.Configured())
	_, err := svc.Reply(context.Background(), &chat.Request{Message: "hi"})
	require.ErrorIs(t, err, chat.ErrNotConfigured)
}

func TestChatService_ProviderErrorIsWrapped(t *testing.T) {
	upstream := errors.New("quota")
	model := &mocks.ChatModelMock{GenerateFn: func(context.Context, string, []chat.Message) (string, error) {
		return "", upstream
	}}
	svc := services.NewChatService(model, &mocks.SanitizerMock{}, 6, true, nil)
	_, err := svc.Reply(context.Background(), &chat.Request{Message: "hi"})
	require.ErrorIs(t, err, upstream)
}

func TestSuggestions(t *testing.T) {
	require.Equal(t, []string{"Explore AI tools", "View services", "Contact Devil Labs"}, services.Suggestions("hello"))
	require.Equal(t, []string{"Show me AI tools", "What cybersecurity apps are available?", "View all services"},
		services.Suggestions("Can I hire you to build an app?"))
	require.Equal(t, []string{"Latest blog posts", "Show tutorials"}, services.Suggestions("any new Tutorial?"))
}

func TestActions(t *testing.T) {
	require.Empty(t, services.Actions("hello"))

	acts := services.Actions("send me your CV and a quote")
	require.Len(t, acts, 2)
	require.Equal(t, "download", acts[0].Type)
	require.Equal(t, "/contact", acts[1].URL)
}

func TestTrimHistory(t *testing.T) {
	h := []chat.Message{{Role: "user", Content: "a"}, {Role: "bot", Content: "b"}, {Role: "user", Content: "c"}}
	out := services.TrimHistory(h, 2)
	require.Equal(t, []chat.Message{{Role: chat.RoleModel, Content: "b"}, {Role: chat.RoleUser, Content: "c"}}, out)
	require.Empty(t, services.TrimHistory(nil, 6))
}
