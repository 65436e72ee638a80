package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/taskdeck/taskdeck/internal/infra/httpclient"
	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/modules/repo"
	"github.com/taskdeck/taskdeck/internal/pkg/apperr"
)

// PlaceholderReply stands in for an empty or unparseable upstream reply
// body so the transcript never records a blank assistant turn.
const PlaceholderReply = "No response from model."

// ChatCompleter is the relay capability: send an ordered history,
// receive a reply. The HTTP client satisfies it; tests substitute it.
type ChatCompleter interface {
	Chat(ctx context.Context, messages []httpclient.ChatMessage, stream bool) (*httpclient.ChatResponse, []byte, error)
}

type MessageService interface {
	List(ctx context.Context, runID int64) ([]model.TaskMessage, error)
	Post(ctx context.Context, in PostMessageInput) (*PostMessageOutput, error)
}

type messageService struct {
	messages repo.MessageRepo
	runs     repo.RunRepo
	chat     ChatCompleter
	log      *zap.Logger
}

func NewMessageService(messages repo.MessageRepo, runs repo.RunRepo, chat ChatCompleter, log *zap.Logger) MessageService {
	return &messageService{messages: messages, runs: runs, chat: chat, log: log}
}

type PostMessageInput struct {
	RunID   int64
	Role    string
	Content string
	Stream  bool
}

type PostMessageOutput struct {
	UserMessage      *model.TaskMessage
	AssistantMessage *model.TaskMessage
	Upstream         json.RawMessage
}

func (s *messageService) List(ctx context.Context, runID int64) ([]model.TaskMessage, error) {
	return s.messages.ListByRun(ctx, runID)
}

// Post persists the message and, for role=user, relays the run's full
// ordered history to the inference endpoint and persists the reply.
// The stored user message is a durable fact: a relay failure is
// reported as an upstream error without rolling it back.
func (s *messageService) Post(ctx context.Context, in PostMessageInput) (*PostMessageOutput, error) {
	if in.Role == "" || in.Content == "" {
		return nil, apperr.Validation("role and content are required")
	}
	if _, err := s.runs.Get(ctx, in.RunID); err != nil {
		return nil, notFoundOr(err, "Run not found")
	}

	msg := &model.TaskMessage{
		TaskRunID: in.RunID,
		Role:      in.Role,
		Content:   in.Content,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, apperr.Store("Failed to store message", err)
	}

	out := &PostMessageOutput{UserMessage: msg}
	if in.Role != model.MessageRoleUser {
		return out, nil
	}

	history, err := s.messages.ListByRun(ctx, in.RunID)
	if err != nil {
		return nil, apperr.Store("Failed to load run history", err)
	}
	wire := make([]httpclient.ChatMessage, 0, len(history))
	for _, h := range history {
		wire = append(wire, httpclient.ChatMessage{Role: h.Role, Content: h.Content})
	}

	resp, raw, err := s.chat.Chat(ctx, wire, in.Stream)
	if err != nil {
		s.log.Sugar().Errorw("chat relay failed", "run_id", in.RunID, "err", err)
		return nil, apperr.Upstream("Failed to contact inference endpoint", err)
	}

	content := resp.Message.Content
	if content == "" {
		content = PlaceholderReply
	}

	reply := &model.TaskMessage{
		TaskRunID: in.RunID,
		Role:      model.MessageRoleAssistant,
		Content:   content,
	}
	if err := s.messages.Create(ctx, reply); err != nil {
		return nil, apperr.Store("Failed to store assistant message", err)
	}

	out.AssistantMessage = reply
	out.Upstream = json.RawMessage(raw)
	return out, nil
}
