package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"agentic-ai-be/internal/apperror"
	"agentic-ai-be/internal/config"
	"agentic-ai-be/internal/entity"
	"agentic-ai-be/internal/testutil"
	"agentic-ai-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLlmConfigWithoutKey() config.LlmConfig {
	cfg := testLlmConfig()
	cfg.ApiKey = ""
	return cfg
}

func newAnalysisServiceForTest(t *testing.T, uow *testutil.MockUnitOfWork, provider *testutil.MockLLMProvider) (IAnalysisService, string) {
	t.Helper()
	uploadDir := t.TempDir()
	svc := NewAnalysisService(uow, provider, testutil.NopLogger{}, testLlmConfig(), uploadDir)
	return svc, uploadDir
}

func uploadsLeftBehind(t *testing.T, uploadDir string) []string {
	t.Helper()
	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = filepath.Join(uploadDir, e.Name())
	}
	return names
}

func TestAnalyze_TextFile(t *testing.T) {
	uow := testutil.NewMockUnitOfWork()
	mockLLM := &testutil.MockLLMProvider{}

	var prompt string
	mockLLM.ChatFunc = func(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
		prompt = history[len(history)-1].Content
		return "Insightful analysis of notes.txt", nil
	}

	var stored *entity.DocumentAnalysis
	uow.Analyses.CreateFunc = func(ctx context.Context, a *entity.DocumentAnalysis) error {
		stored = a
		return nil
	}

	svc, uploadDir := newAnalysisServiceForTest(t, uow, mockLLM)

	sessionId := uuid.New()
	res, err := svc.Analyze(context.Background(), strings.NewReader("hello world content"), "notes.txt", "text/plain", sessionId)
	require.NoError(t, err)

	assert.Equal(t, "Insightful analysis of notes.txt", res.Analysis)
	assert.Equal(t, "notes.txt", res.Filename)
	assert.Equal(t, "text/plain", res.FileType)

	assert.Contains(t, prompt, "hello world content")

	require.NotNil(t, stored)
	assert.Equal(t, "notes.txt", stored.Filename)
	assert.Equal(t, sessionId, stored.SessionId)

	assert.Empty(t, uploadsLeftBehind(t, uploadDir))
}

func TestAnalyze_TextContentCapped(t *testing.T) {
	uow := testutil.NewMockUnitOfWork()
	mockLLM := &testutil.MockLLMProvider{}

	var prompt string
	mockLLM.ChatFunc = func(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
		prompt = history[len(history)-1].Content
		return "ok", nil
	}

	svc, _ := newAnalysisServiceForTest(t, uow, mockLLM)

	big := strings.Repeat("x", 6000)
	_, err := svc.Analyze(context.Background(), strings.NewReader(big), "big.txt", "text/plain", uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 5000, strings.Count(prompt, "x"))
}

func TestAnalyze_BinaryFileGetsGenericPrompt(t *testing.T) {
	uow := testutil.NewMockUnitOfWork()
	mockLLM := &testutil.MockLLMProvider{}

	var prompt string
	mockLLM.ChatFunc = func(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
		prompt = history[len(history)-1].Content
		return "ok", nil
	}

	svc, _ := newAnalysisServiceForTest(t, uow, mockLLM)

	_, err := svc.Analyze(context.Background(), strings.NewReader("\x00\x01binary"), "report.pdf", "application/pdf", uuid.New())
	require.NoError(t, err)

	assert.Contains(t, prompt, "report.pdf")
	assert.Contains(t, prompt, "application/pdf")
	assert.NotContains(t, prompt, "binary")
}

func TestAnalyze_MissingCredential(t *testing.T) {
	uow := testutil.NewMockUnitOfWork()
	svc := NewAnalysisService(uow, &testutil.MockLLMProvider{}, testutil.NopLogger{}, testLlmConfigWithoutKey(), t.TempDir())

	_, err := svc.Analyze(context.Background(), strings.NewReader("data"), "f.txt", "text/plain", uuid.New())
	require.Error(t, err)

	kind, ok := apperror.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindConfiguration, kind)
}

func TestAnalyze_TempFileRemovedOnFailure(t *testing.T) {
	uow := testutil.NewMockUnitOfWork()
	mockLLM := &testutil.MockLLMProvider{}
	mockLLM.ChatFunc = func(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
		return "", errors.New("gateway down")
	}

	svc, uploadDir := newAnalysisServiceForTest(t, uow, mockLLM)

	_, err := svc.Analyze(context.Background(), strings.NewReader("data"), "f.txt", "text/plain", uuid.New())
	require.Error(t, err)

	kind, ok := apperror.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindCollaborator, kind)

	assert.Empty(t, uploadsLeftBehind(t, uploadDir))
}

func TestAnalyze_EmptyContentTypeFallsBackToUnknown(t *testing.T) {
	uow := testutil.NewMockUnitOfWork()
	mockLLM := &testutil.MockLLMProvider{}

	svc, _ := newAnalysisServiceForTest(t, uow, mockLLM)

	res, err := svc.Analyze(context.Background(), strings.NewReader("data"), "mystery", "", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "unknown", res.FileType)
}
