package pipeline

import (
	"context"

	"github.com/voyago-ai/concierge-engine/internal/company"
	"github.com/voyago-ai/concierge-engine/internal/config"
	"github.com/voyago-ai/concierge-engine/internal/llm"
	"github.com/voyago-ai/concierge-engine/internal/observability"
	"github.com/voyago-ai/concierge-engine/internal/session"
	"github.com/voyago-ai/concierge-engine/internal/storage"
)

// ChatLog records completed exchanges. Append failures are logged, never
// surfaced.
type ChatLog interface {
	Append(ctx context.Context, entry storage.ChatLogEntry) error
}

// Request is the inbound message shape.
type Request struct {
	Message   string        `json:"message"`
	SessionID string        `json:"sessionId"`
	History   []llm.Message `json:"history"`
}

// Service runs the full message pipeline: classify, retrieve, assemble,
// complete, shape, persist.
type Service struct {
	classifier *Classifier
	retriever  *Retriever
	completer  llm.Client
	chatLog    ChatLog
	sessions   session.Store
	profile    company.Profile
	completion config.CompletionConfig
	retrieval  config.RetrievalConfig
	logger     *observability.Logger
}

// NewService wires the pipeline. chatLog and sessions may be nil; the
// corresponding side effects are then skipped.
func NewService(
	classifier *Classifier,
	retriever *Retriever,
	completer llm.Client,
	chatLog ChatLog,
	sessions session.Store,
	profile company.Profile,
	completion config.CompletionConfig,
	retrieval config.RetrievalConfig,
	logger *observability.Logger,
) *Service {
	return &Service{
		classifier: classifier,
		retriever:  retriever,
		completer:  completer,
		chatLog:    chatLog,
		sessions:   sessions,
		profile:    profile,
		completion: completion,
		retrieval:  retrieval,
		logger:     logger.WithComponent("pipeline"),
	}
}

// Ask processes one message end to end. A final completion failure returns
// the apology reply together with the error so transports can signal a
// server fault while still sending a usable body.
func (s *Service) Ask(ctx context.Context, req Request) (Reply, error) {
	logger := s.logger.WithSession(req.SessionID)

	restated, category := s.classifier.Classify(ctx, req.Message)

	result := s.retriever.Retrieve(ctx, req.Message, category)
	logger.Debug().
		Str("category", category).
		Int("tours", len(result.Tours)).
		Int("facts", len(result.Facts)).
		Msg("Retrieval completed")

	contextBlock := Assemble(restated, result.Tours, result.Facts)
	messages := s.buildMessages(ctx, req, contextBlock)

	answer, err := s.completer.Complete(ctx, llm.CompletionRequest{
		Model:       s.completion.AnswerModel,
		Messages:    messages,
		Temperature: s.completion.AnswerTemperature,
		MaxTokens:   s.completion.AnswerMaxTokens,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Answer completion failed")
		apology := fallbackAnswer(s.profile)
		return Reply{
			Answer:   apology,
			Response: apology,
			Error:    err.Error(),
		}, err
	}

	reply := Shape(category, result.Tours, answer, s.retrieval.PreviewTours)

	s.record(ctx, logger, req, answer)

	return reply, nil
}

// buildMessages composes the completion payload: persona, bounded history,
// then the context block with the raw message on a trailing line.
func (s *Service) buildMessages(ctx context.Context, req Request, contextBlock string) []llm.Message {
	history := req.History
	if len(history) == 0 && s.sessions != nil && req.SessionID != "" {
		stored, err := s.sessions.History(ctx, req.SessionID)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Session history load failed")
		} else {
			history = stored
		}
	}
	if limit := s.retrieval.HistoryTurns; len(history) > limit {
		history = history[len(history)-limit:]
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    llm.RoleSystem,
		Content: answerSystemPrompt(s.profile),
	})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{
		Role:    llm.RoleUser,
		Content: contextBlock + "\n\nKullanıcı mesajı: " + req.Message,
	})
	return messages
}

// record persists the exchange best-effort: chat log append and session
// history update both degrade to a warning.
func (s *Service) record(ctx context.Context, logger *observability.Logger, req Request, answer string) {
	if s.chatLog != nil {
		err := s.chatLog.Append(ctx, storage.ChatLogEntry{
			SessionID:         req.SessionID,
			UserMessage:       req.Message,
			AssistantResponse: answer,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("Chat log append failed")
		}
	}

	if s.sessions != nil && req.SessionID != "" {
		if err := s.sessions.Append(ctx, req.SessionID, req.Message, answer); err != nil {
			logger.Warn().Err(err).Msg("Session history update failed")
		}
	}
}
