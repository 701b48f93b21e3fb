package testutil

import (
	"context"
	"time"

	"agentic-ai-be/internal/entity"
	"agentic-ai-be/internal/repository/contract"
	"agentic-ai-be/internal/repository/specification"
	"agentic-ai-be/internal/repository/unitofwork"
	"agentic-ai-be/pkg/llm"

	"github.com/google/uuid"
)

// Func-field mocks: tests set only the behaviors they care about; anything
// unset succeeds with zero values.

type MockChatSessionRepository struct {
	CreateIfAbsentFunc func(ctx context.Context, session *entity.ChatSession) error
	RecordActivityFunc func(ctx context.Context, id uuid.UUID, delta int, at time.Time) error
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	FindOneFunc        func(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAllFunc        func(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)
	CountFunc          func(ctx context.Context, specs ...specification.Specification) (int64, error)
}

var _ contract.ChatSessionRepository = &MockChatSessionRepository{}

func (m *MockChatSessionRepository) CreateIfAbsent(ctx context.Context, session *entity.ChatSession) error {
	if m.CreateIfAbsentFunc != nil {
		return m.CreateIfAbsentFunc(ctx, session)
	}
	return nil
}

func (m *MockChatSessionRepository) RecordActivity(ctx context.Context, id uuid.UUID, delta int, at time.Time) error {
	if m.RecordActivityFunc != nil {
		return m.RecordActivityFunc(ctx, id, delta, at)
	}
	return nil
}

func (m *MockChatSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockChatSessionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(ctx, specs...)
	}
	return nil, nil
}

func (m *MockChatSessionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, specs...)
	}
	return nil, nil
}

func (m *MockChatSessionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, specs...)
	}
	return 0, nil
}

type MockChatMessageRepository struct {
	CreateFunc               func(ctx context.Context, message *entity.ChatMessage) error
	FindAllFunc              func(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	DeleteAllBySessionIdFunc func(ctx context.Context, sessionId uuid.UUID) error
	CountFunc                func(ctx context.Context, specs ...specification.Specification) (int64, error)
}

var _ contract.ChatMessageRepository = &MockChatMessageRepository{}

func (m *MockChatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, message)
	}
	return nil
}

func (m *MockChatMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, specs...)
	}
	return nil, nil
}

func (m *MockChatMessageRepository) DeleteAllBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	if m.DeleteAllBySessionIdFunc != nil {
		return m.DeleteAllBySessionIdFunc(ctx, sessionId)
	}
	return nil
}

func (m *MockChatMessageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, specs...)
	}
	return 0, nil
}

type MockDocumentAnalysisRepository struct {
	CreateFunc  func(ctx context.Context, analysis *entity.DocumentAnalysis) error
	FindAllFunc func(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentAnalysis, error)
	CountFunc   func(ctx context.Context, specs ...specification.Specification) (int64, error)
}

var _ contract.DocumentAnalysisRepository = &MockDocumentAnalysisRepository{}

func (m *MockDocumentAnalysisRepository) Create(ctx context.Context, analysis *entity.DocumentAnalysis) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, analysis)
	}
	return nil
}

func (m *MockDocumentAnalysisRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentAnalysis, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, specs...)
	}
	return nil, nil
}

func (m *MockDocumentAnalysisRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, specs...)
	}
	return 0, nil
}

// MockUnitOfWork wires the three repository mocks together and doubles as
// its own factory.
type MockUnitOfWork struct {
	Sessions *MockChatSessionRepository
	Messages *MockChatMessageRepository
	Analyses *MockDocumentAnalysisRepository
}

var _ unitofwork.UnitOfWork = &MockUnitOfWork{}
var _ unitofwork.RepositoryFactory = &MockUnitOfWork{}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		Sessions: &MockChatSessionRepository{},
		Messages: &MockChatMessageRepository{},
		Analyses: &MockDocumentAnalysisRepository{},
	}
}

func (m *MockUnitOfWork) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return m }
func (m *MockUnitOfWork) Begin(ctx context.Context) error                         { return nil }
func (m *MockUnitOfWork) Commit() error                                           { return nil }
func (m *MockUnitOfWork) Rollback() error                                         { return nil }

func (m *MockUnitOfWork) ChatSessionRepository() contract.ChatSessionRepository {
	return m.Sessions
}

func (m *MockUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return m.Messages
}

func (m *MockUnitOfWork) DocumentAnalysisRepository() contract.DocumentAnalysisRepository {
	return m.Analyses
}

type MockLLMProvider struct {
	ChatFunc     func(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error)
	GenerateFunc func(ctx context.Context, prompt string, options ...llm.Option) (string, error)
}

var _ llm.LLMProvider = &MockLLMProvider{}

func (m *MockLLMProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, history, options...)
	}
	return "mock response", nil
}

func (m *MockLLMProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, options...)
	}
	return "mock response", nil
}

// NopLogger satisfies logger.ILogger without writing anywhere.
type NopLogger struct{}

func (NopLogger) Debug(module, message string, details map[string]interface{}) {}
func (NopLogger) Info(module, message string, details map[string]interface{})  {}
func (NopLogger) Warn(module, message string, details map[string]interface{})  {}
func (NopLogger) Error(module, message string, details map[string]interface{}) {}
func (NopLogger) Sync() error                                                  { return nil }
