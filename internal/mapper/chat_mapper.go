package mapper

import (
	"agentic-ai-be/internal/entity"
	"agentic-ai-be/internal/model"
)

// ChatMapper is the explicit serialization boundary between domain entities
// and their store representation. Timestamps are normalized to UTC on write
// so they sort consistently regardless of the writer's locale.
type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) SessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:            s.Id,
		Title:         s.Title,
		CreatedAt:     s.CreatedAt.UTC(),
		LastMessageAt: s.LastMessageAt.UTC(),
		MessageCount:  s.MessageCount,
		ModelProvider: s.ModelProvider,
		ModelName:     s.ModelName,
	}
}

func (m *ChatMapper) SessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:            s.Id,
		Title:         s.Title,
		CreatedAt:     s.CreatedAt,
		LastMessageAt: s.LastMessageAt,
		MessageCount:  s.MessageCount,
		ModelProvider: s.ModelProvider,
		ModelName:     s.ModelName,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:            msg.Id,
		Role:          msg.Role,
		Content:       msg.Content,
		CreatedAt:     msg.CreatedAt.UTC(),
		ChatSessionId: msg.ChatSessionId,
		ModelProvider: msg.ModelProvider,
		ModelName:     msg.ModelName,
	}
}

func (m *ChatMapper) MessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:            msg.Id,
		Role:          msg.Role,
		Content:       msg.Content,
		CreatedAt:     msg.CreatedAt,
		ChatSessionId: msg.ChatSessionId,
		ModelProvider: msg.ModelProvider,
		ModelName:     msg.ModelName,
	}
}

func (m *ChatMapper) MessagesToEntities(models []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(models))
	for i, msg := range models {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
