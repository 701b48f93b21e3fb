package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"agentic-ai-be/internal/constant"
	"agentic-ai-be/internal/entity"
	"agentic-ai-be/internal/repository/specification"
	"agentic-ai-be/internal/repository/unitofwork"
	"agentic-ai-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) unitofwork.RepositoryFactory {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	return unitofwork.NewRepositoryFactory(gormDB)
}

func TestGormConnection(t *testing.T) {
	factory := openTestDB(t)
	uow := factory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ChatSessionRepository())
	assert.NotNil(t, uow.ChatMessageRepository())
	assert.NotNil(t, uow.DocumentAnalysisRepository())

	t.Run("Check ChatSession Repository", func(t *testing.T) {
		count, err := uow.ChatSessionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("ChatSession count: %d", count)
	})

	t.Run("Check ChatMessage Repository", func(t *testing.T) {
		count, err := uow.ChatMessageRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("ChatMessage count: %d", count)
	})

	t.Run("Check DocumentAnalysis Repository", func(t *testing.T) {
		count, err := uow.DocumentAnalysisRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("DocumentAnalysis count: %d", count)
	})
}

func TestSessionUpsertIsIdempotent(t *testing.T) {
	factory := openTestDB(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	sessions := uow.ChatSessionRepository()

	now := time.Now().UTC()
	session := &entity.ChatSession{
		Id:            uuid.New(),
		Title:         "Integration test session",
		CreatedAt:     now,
		LastMessageAt: now,
		ModelProvider: "anthropic",
		ModelName:     "claude-sonnet-4-20250514",
	}
	defer func() {
		_ = sessions.Delete(ctx, session.Id)
	}()

	require.NoError(t, sessions.CreateIfAbsent(ctx, session))

	// Second insert of the same id must be a no-op, not an error.
	duplicate := *session
	duplicate.Title = "Should be ignored"
	require.NoError(t, sessions.CreateIfAbsent(ctx, &duplicate))

	stored, err := sessions.FindOne(ctx, specification.ByID{ID: session.Id})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Integration test session", stored.Title)
}

func TestRecordActivityBumpsCounters(t *testing.T) {
	factory := openTestDB(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	sessions := uow.ChatSessionRepository()

	now := time.Now().UTC().Truncate(time.Millisecond)
	session := &entity.ChatSession{
		Id:            uuid.New(),
		Title:         "Counter test",
		CreatedAt:     now,
		LastMessageAt: now,
		ModelProvider: "anthropic",
		ModelName:     "claude-sonnet-4-20250514",
	}
	defer func() {
		_ = sessions.Delete(ctx, session.Id)
	}()
	require.NoError(t, sessions.CreateIfAbsent(ctx, session))

	later := now.Add(time.Minute)
	require.NoError(t, sessions.RecordActivity(ctx, session.Id, 2, later))
	require.NoError(t, sessions.RecordActivity(ctx, session.Id, 2, later.Add(time.Minute)))

	stored, err := sessions.FindOne(ctx, specification.ByID{ID: session.Id})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 4, stored.MessageCount)
	assert.WithinDuration(t, later.Add(time.Minute), stored.LastMessageAt, time.Second)
}

func TestSessionDeleteRemovesMessages(t *testing.T) {
	factory := openTestDB(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	sessions := uow.ChatSessionRepository()
	messages := uow.ChatMessageRepository()

	now := time.Now().UTC()
	session := &entity.ChatSession{
		Id:            uuid.New(),
		Title:         "Delete test",
		CreatedAt:     now,
		LastMessageAt: now,
		ModelProvider: "anthropic",
		ModelName:     "claude-sonnet-4-20250514",
	}
	require.NoError(t, sessions.CreateIfAbsent(ctx, session))

	for _, role := range []string{constant.ChatMessageRoleUser, constant.ChatMessageRoleAssistant} {
		msg := &entity.ChatMessage{
			Id:            uuid.New(),
			Role:          role,
			Content:       "integration " + role,
			CreatedAt:     time.Now().UTC(),
			ChatSessionId: session.Id,
		}
		require.NoError(t, messages.Create(ctx, msg))
	}

	require.NoError(t, messages.DeleteAllBySessionId(ctx, session.Id))
	require.NoError(t, sessions.Delete(ctx, session.Id))

	remaining, err := messages.Count(ctx, specification.ByChatSessionID{ChatSessionID: session.Id})
	require.NoError(t, err)
	assert.Zero(t, remaining)

	stored, err := sessions.FindOne(ctx, specification.ByID{ID: session.Id})
	require.NoError(t, err)
	assert.Nil(t, stored)
}
