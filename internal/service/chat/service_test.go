package chat

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-assistant-api/internal/model"
	"health-assistant-api/pkg/logger"
	"health-assistant-api/pkg/metrics"
	"health-assistant-api/pkg/openai"
)

type mockCompleter struct {
	CreateChatCompletionFunc func(ctx context.Context, turns []model.ChatTurn) (string, error)
	calls                    int
	lastTurns                []model.ChatTurn
}

func (m *mockCompleter) CreateChatCompletion(ctx context.Context, turns []model.ChatTurn) (string, error) {
	m.calls++
	m.lastTurns = turns
	if m.CreateChatCompletionFunc != nil {
		return m.CreateChatCompletionFunc(ctx, turns)
	}
	return "", nil
}

// One registry per process; prometheus rejects duplicate registration.
var testMetrics = metrics.NewMetrics("chat_service_test")

func newTestService(completer Completer) *Service {
	return NewService(completer, logger.NewLogger(&logger.Config{Output: io.Discard}), testMetrics)
}

func TestHandleMessage_Success(t *testing.T) {
	completer := &mockCompleter{
		CreateChatCompletionFunc: func(ctx context.Context, turns []model.ChatTurn) (string, error) {
			return "Drink plenty of water and rest.", nil
		},
	}
	svc := newTestService(completer)

	history := []model.ChatTurn{
		{Role: model.RoleUser, Content: "Hello"},
		{Role: model.RoleAssistant, Content: "Hi, how can I help?"},
	}

	answer, updated := svc.HandleMessage(context.Background(), "How do I treat a cold?", history)

	assert.Equal(t, "Drink plenty of water and rest.", answer)

	// Exactly two turns appended: the question and the reply.
	require.Len(t, updated, 4)
	assert.Equal(t, model.ChatTurn{Role: model.RoleUser, Content: "How do I treat a cold?"}, updated[2])
	assert.Equal(t, model.ChatTurn{Role: model.RoleAssistant, Content: "Drink plenty of water and rest."}, updated[3])
}

func TestHandleMessage_SendsSystemPromptAndHistory(t *testing.T) {
	completer := &mockCompleter{}
	svc := newTestService(completer)

	history := []model.ChatTurn{
		{Role: model.RoleUser, Content: "first question"},
		{Role: model.RoleAssistant, Content: "first answer"},
	}

	svc.HandleMessage(context.Background(), "second question", history)

	require.Len(t, completer.lastTurns, 4)
	assert.Equal(t, model.RoleSystem, completer.lastTurns[0].Role)
	assert.Contains(t, completer.lastTurns[0].Content, "healthcare assistant")
	assert.Equal(t, history[0], completer.lastTurns[1])
	assert.Equal(t, history[1], completer.lastTurns[2])
	assert.Equal(t, model.ChatTurn{Role: model.RoleUser, Content: "second question"}, completer.lastTurns[3])
}

func TestHandleMessage_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t "} {
		completer := &mockCompleter{}
		svc := newTestService(completer)

		history := []model.ChatTurn{{Role: model.RoleUser, Content: "earlier"}}
		answer, updated := svc.HandleMessage(context.Background(), input, history)

		assert.Equal(t, "Please enter a question.", answer)
		assert.Equal(t, history, updated, "blank input must not change the history")
		assert.Zero(t, completer.calls, "blank input must not reach the completion service")
	}
}

func TestHandleMessage_FailureReplies(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "authentication",
			err:  &openai.Error{Kind: openai.KindAuth, Message: "bad key"},
			want: "❌ Authentication Error: Check your OpenAI API key.",
		},
		{
			name: "quota",
			err:  &openai.Error{Kind: openai.KindQuota, Message: "quota exhausted"},
			want: "💰 Quota exceeded: Please check your OpenAI billing.",
		},
		{
			name: "timeout",
			err:  &openai.Error{Kind: openai.KindTimeout, Message: "deadline exceeded"},
			want: "⏰ Request timed out. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &mockCompleter{
				CreateChatCompletionFunc: func(ctx context.Context, turns []model.ChatTurn) (string, error) {
					return "", tt.err
				},
			}
			svc := newTestService(completer)

			answer, updated := svc.HandleMessage(context.Background(), "question", nil)

			assert.Equal(t, tt.want, answer)

			// Failures are recorded in the history exactly like replies.
			require.Len(t, updated, 2)
			assert.Equal(t, model.RoleUser, updated[0].Role)
			assert.Equal(t, model.RoleAssistant, updated[1].Role)
			assert.Equal(t, tt.want, updated[1].Content)
		})
	}
}

func TestHandleMessage_FailureRepliesCarryDetail(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		prefix string
	}{
		{
			name:   "service",
			err:    &openai.Error{Kind: openai.KindService, Message: "upstream unavailable"},
			prefix: "⚠️ OpenAI API error:",
		},
		{
			name:   "configuration",
			err:    &openai.Error{Kind: openai.KindConfig, Message: "API key not configured"},
			prefix: "❌ Configuration error:",
		},
		{
			name:   "unexpected",
			err:    &openai.Error{Kind: openai.KindUnexpected, Message: "response contained no choices"},
			prefix: "❌ Unexpected error:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := &mockCompleter{
				CreateChatCompletionFunc: func(ctx context.Context, turns []model.ChatTurn) (string, error) {
					return "", tt.err
				},
			}
			svc := newTestService(completer)

			answer, _ := svc.HandleMessage(context.Background(), "question", nil)

			assert.Contains(t, answer, tt.prefix)
			assert.Contains(t, answer, tt.err.Error())
		})
	}
}
