package unitofwork

import (
	"context"

	"agentic-ai-be/internal/repository/contract"
)

// UnitOfWork hands out repositories bound to one logical request. The chat
// path deliberately performs its session and message writes outside a
// transaction (they are not atomic), but Begin/Commit/Rollback are available
// for callers that do need one.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	DocumentAnalysisRepository() contract.DocumentAnalysisRepository
}
