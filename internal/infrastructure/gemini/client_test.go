package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devillabs/cms-api/internal/core/domain/chat"
	"github.com/stretchr/testify/require"
)

func TestClient_Generate(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
		require.Equal(t, "k", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Hello "},{"text":"there"}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", Model: "gemini-2.0-flash", BaseURL: srv.URL}, nil)
	out, err := c.Generate(context.Background(), "be nice", []chat.Message{
		{Role: chat.RoleUser, Content: "hi"},
		{Role: chat.RoleModel, Content: "hey"},
		{Role: chat.RoleUser, Content: "who are you"},
	})
	require.NoError(t, err)
	require.Equal(t, "Hello there", out)
	require.NotNil(t, got.SystemInstruction)
	require.Equal(t, "be nice", got.SystemInstruction.Parts[0].Text)
	require.Len(t, got.Contents, 3)
	require.Equal(t, "model", got.Contents[1].Role)
}

func TestClient_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`quota`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", Model: "m", BaseURL: srv.URL}, nil)
	_, err := c.Generate(context.Background(), "", []chat.Message{{Role: chat.RoleUser, Content: "hi"}})
	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, http.StatusTooManyRequests, perr.StatusCode)
}

func TestClient_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", Model: "m", BaseURL: srv.URL}, nil)
	_, err := c.Generate(context.Background(), "", nil)
	require.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient(Config{Model: "m"}, nil)
	require.False(t, c.Configured())
	_, err := c.Generate(context.Background(), "", nil)
	require.ErrorIs(t, err, chat.ErrNotConfigured)
}
