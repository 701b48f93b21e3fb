package service

import (
	"context"
	"time"

	"agentic-ai-be/internal/apperror"
	"agentic-ai-be/internal/config"
	"agentic-ai-be/internal/constant"
	"agentic-ai-be/internal/dto"
	"agentic-ai-be/internal/entity"
	"agentic-ai-be/internal/pkg/logger"
	"agentic-ai-be/internal/repository/memory"
	"agentic-ai-be/internal/repository/specification"
	"agentic-ai-be/internal/repository/unitofwork"
	"agentic-ai-be/pkg/llm"

	"github.com/google/uuid"
)

// IChatService defines the conversation orchestrator interface
type IChatService interface {
	SendChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	GetAllSessions(ctx context.Context) ([]*dto.SessionResponse, error)
	GetSessionMessages(ctx context.Context, sessionId uuid.UUID) ([]*dto.MessageResponse, error)
	DeleteSession(ctx context.Context, sessionId uuid.UUID) error
}

const (
	sessionListLimit = 50
	messageListLimit = 1000
)

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.LLMProvider
	contextRepo *memory.ContextRepository
	logger      logger.ILogger
	llmCfg      config.LlmConfig
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	contextRepo *memory.ContextRepository,
	log logger.ILogger,
	llmCfg config.LlmConfig,
) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
		contextRepo: contextRepo,
		logger:      log,
		llmCfg:      llmCfg,
	}
}

// SendChat persists the user turn, gets a reply from the LLM gateway and
// persists it. The two message writes and the session bookkeeping are not
// one transaction: a gateway failure leaves the user message behind without
// a reply, which callers see as a plain processing error.
func (cs *chatService) SendChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	sessionId := uuid.New()
	if request.SessionId != "" {
		parsed, err := uuid.Parse(request.SessionId)
		if err != nil {
			return nil, apperror.Store("chat processing", err)
		}
		sessionId = parsed
	}

	provider := request.ModelProvider
	if provider == "" {
		provider = constant.DefaultModelProvider
	}
	model := request.ModelName
	if model == "" {
		model = constant.DefaultModelName
	}

	now := time.Now().UTC()
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	// Insert-if-absent closes the first-message race: concurrent chats on a
	// fresh session id end up with exactly one session row.
	session := &entity.ChatSession{
		Id:            sessionId,
		Title:         sessionTitle(request.Message),
		CreatedAt:     now,
		LastMessageAt: now,
		MessageCount:  0,
		ModelProvider: provider,
		ModelName:     model,
	}
	if err := uow.ChatSessionRepository().CreateIfAbsent(ctx, session); err != nil {
		return nil, apperror.Store("chat processing", err)
	}

	userMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		Role:          constant.ChatMessageRoleUser,
		Content:       request.Message,
		CreatedAt:     now,
		ChatSessionId: sessionId,
		ModelProvider: provider,
		ModelName:     model,
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, apperror.Store("chat processing", err)
	}

	if cs.llmCfg.ApiKey == "" {
		return nil, apperror.Configuration("chat processing")
	}

	history, err := cs.conversationContext(ctx, uow, sessionId, request.SystemMessage)
	if err != nil {
		return nil, apperror.Store("chat processing", err)
	}
	history = append(history, llm.Message{Role: constant.ChatMessageRoleUser, Content: request.Message})

	reply, err := cs.llmProvider.Chat(ctx, history,
		llm.WithProvider(provider),
		llm.WithModel(model),
		llm.WithConversation(sessionId.String()),
		llm.WithMaxTokens(cs.llmCfg.MaxTokens),
	)
	if err != nil {
		cs.logger.Error("chat", "llm gateway call failed", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
		return nil, apperror.Collaborator("chat processing", err)
	}

	replyAt := time.Now().UTC()
	assistantMessage := &entity.ChatMessage{
		Id:            uuid.New(),
		Role:          constant.ChatMessageRoleAssistant,
		Content:       reply,
		CreatedAt:     replyAt,
		ChatSessionId: sessionId,
		ModelProvider: provider,
		ModelName:     model,
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, apperror.Store("chat processing", err)
	}

	// user + assistant message
	if err := uow.ChatSessionRepository().RecordActivity(ctx, sessionId, 2, replyAt); err != nil {
		return nil, apperror.Store("chat processing", err)
	}

	cs.contextRepo.Save(sessionId.String(), append(history, llm.Message{
		Role:    constant.ChatMessageRoleAssistant,
		Content: reply,
	}))

	return &dto.ChatResponse{
		Response:  reply,
		SessionId: sessionId,
		ModelInfo: dto.ModelInfo{Provider: provider, Model: model},
		Timestamp: replyAt,
	}, nil
}

// conversationContext returns the history for the session, system prompt
// first, without the turn currently being processed. Served from the
// in-memory cache when warm, rebuilt from the store otherwise. The returned
// slice is private to this request; callers may append to it.
func (cs *chatService) conversationContext(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID, systemMessage string) ([]llm.Message, error) {
	if systemMessage == "" {
		systemMessage = constant.DefaultSystemPrompt
	}

	if cached, found := cs.contextRepo.Get(sessionId.String()); found {
		// The system prompt follows the current request, not whatever the
		// cache was warmed with.
		if len(cached) > 0 && cached[0].Role == constant.ChatMessageRoleSystem {
			cached[0].Content = systemMessage
		}
		return cached, nil
	}

	stored, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
		specification.Limit{N: messageListLimit},
	)
	if err != nil {
		return nil, err
	}

	history := make([]llm.Message, 0, len(stored)+1)
	history = append(history, llm.Message{Role: constant.ChatMessageRoleSystem, Content: systemMessage})
	for _, msg := range stored {
		history = append(history, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	return history, nil
}

func (cs *chatService) GetAllSessions(ctx context.Context) ([]*dto.SessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.OrderBy{Field: "last_message_at", Desc: true},
		specification.Limit{N: sessionListLimit},
	)
	if err != nil {
		return nil, apperror.Store("fetch chat sessions", err)
	}

	res := make([]*dto.SessionResponse, len(sessions))
	for i, s := range sessions {
		res[i] = &dto.SessionResponse{
			Id:            s.Id,
			Title:         s.Title,
			CreatedAt:     s.CreatedAt,
			LastMessageAt: s.LastMessageAt,
			MessageCount:  s.MessageCount,
			ModelProvider: s.ModelProvider,
			ModelName:     s.ModelName,
		}
	}
	return res, nil
}

// GetSessionMessages returns an empty list for an unknown session rather
// than an error.
func (cs *chatService) GetSessionMessages(ctx context.Context, sessionId uuid.UUID) ([]*dto.MessageResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at"},
		specification.Limit{N: messageListLimit},
	)
	if err != nil {
		return nil, apperror.Store("fetch messages", err)
	}

	res := make([]*dto.MessageResponse, len(messages))
	for i, m := range messages {
		res[i] = &dto.MessageResponse{
			Id:            m.Id,
			Role:          m.Role,
			Content:       m.Content,
			Timestamp:     m.CreatedAt,
			SessionId:     m.ChatSessionId,
			ModelProvider: m.ModelProvider,
			ModelName:     m.ModelName,
		}
	}
	return res, nil
}

// DeleteSession removes the session and all its messages. Deleting a
// session that doesn't exist is a success.
func (cs *chatService) DeleteSession(ctx context.Context, sessionId uuid.UUID) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatSessionRepository().Delete(ctx, sessionId); err != nil {
		return apperror.Store("delete session", err)
	}
	if err := uow.ChatMessageRepository().DeleteAllBySessionId(ctx, sessionId); err != nil {
		return apperror.Store("delete session", err)
	}
	cs.contextRepo.Delete(sessionId.String())
	return nil
}

func sessionTitle(message string) string {
	runes := []rune(message)
	if len(runes) > constant.SessionTitleMaxLen {
		return string(runes[:constant.SessionTitleMaxLen]) + "..."
	}
	return message
}
