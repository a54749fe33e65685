package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"health-assistant-api/internal/model"
	"health-assistant-api/pkg/logger"
	"health-assistant-api/pkg/metrics"
	"health-assistant-api/pkg/openai"
)

// systemPrompt is prepended to every completion request and never stored in
// the session history.
const systemPrompt = "You are a helpful healthcare assistant. " +
	"Provide accurate, educational health information. " +
	"Always remind users to consult healthcare professionals for medical advice. " +
	"Keep responses concise and clear."

// emptyInputReply is returned for blank questions; the session is left
// untouched in that case.
const emptyInputReply = "Please enter a question."

// Completer is the chat-completion boundary. Failures must be classifiable
// with openai.KindOf.
type Completer interface {
	CreateChatCompletion(ctx context.Context, turns []model.ChatTurn) (string, error)
}

type Service struct {
	completer Completer
	logger    *logger.Logger
	metrics   *metrics.Metrics
}

func NewService(completer Completer, logger *logger.Logger, metrics *metrics.Metrics) *Service {
	return &Service{
		completer: completer,
		logger:    logger,
		metrics:   metrics,
	}
}

// HandleMessage forwards userText with the session history to the
// completion service and returns the reply plus the updated history.
//
// Blank input returns a guided reply without touching the history. Any
// completion failure is converted into a marker-prefixed message that is
// recorded in the history exactly as a successful reply would be; the
// method never returns an error.
func (s *Service) HandleMessage(ctx context.Context, userText string, history []model.ChatTurn) (string, []model.ChatTurn) {
	if strings.TrimSpace(userText) == "" {
		return emptyInputReply, history
	}

	turns := make([]model.ChatTurn, 0, len(history)+2)
	turns = append(turns, model.ChatTurn{Role: model.RoleSystem, Content: systemPrompt})
	turns = append(turns, history...)
	turns = append(turns, model.ChatTurn{Role: model.RoleUser, Content: userText})

	start := time.Now()
	answer, err := s.completer.CreateChatCompletion(ctx, turns)
	s.metrics.ChatCompletionLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		kind := openai.KindOf(err)
		s.metrics.ChatRequests.WithLabelValues(string(kind)).Inc()
		s.logger.Error(err, "chat completion failed", "kind", string(kind))
		answer = failureReply(kind, err)
	} else {
		s.metrics.ChatRequests.WithLabelValues("success").Inc()
	}

	updated := append(history,
		model.ChatTurn{Role: model.RoleUser, Content: userText},
		model.ChatTurn{Role: model.RoleAssistant, Content: answer},
	)
	return answer, updated
}

// failureReply maps a failure kind to the user-visible message recorded in
// the history. Each class carries a distinct marker so the UI and tests can
// tell them apart.
func failureReply(kind openai.Kind, err error) string {
	switch kind {
	case openai.KindAuth:
		return "❌ Authentication Error: Check your OpenAI API key."
	case openai.KindQuota:
		return "💰 Quota exceeded: Please check your OpenAI billing."
	case openai.KindTimeout:
		return "⏰ Request timed out. Please try again."
	case openai.KindService:
		return fmt.Sprintf("⚠️ OpenAI API error: %v", err)
	case openai.KindConfig:
		return fmt.Sprintf("❌ Configuration error: %v", err)
	default:
		return fmt.Sprintf("❌ Unexpected error: %v", err)
	}
}
