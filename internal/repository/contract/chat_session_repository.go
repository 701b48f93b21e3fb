package contract

import (
	"context"
	"time"

	"agentic-ai-be/internal/entity"
	"agentic-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ChatSessionRepository interface {
	// CreateIfAbsent inserts the session unless a row with its id already
	// exists. Concurrent first messages on one session id therefore cannot
	// produce duplicates.
	CreateIfAbsent(ctx context.Context, session *entity.ChatSession) error

	// RecordActivity bumps message_count by delta and moves last_message_at,
	// as a single in-store expression.
	RecordActivity(ctx context.Context, id uuid.UUID, delta int, at time.Time) error

	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
