package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"agentic-ai-be/internal/apperror"
	"agentic-ai-be/internal/config"
	"agentic-ai-be/internal/constant"
	"agentic-ai-be/internal/dto"
	"agentic-ai-be/internal/entity"
	"agentic-ai-be/internal/pkg/logger"
	"agentic-ai-be/internal/repository/unitofwork"
	"agentic-ai-be/pkg/llm"

	"github.com/google/uuid"
)

// IAnalysisService defines the document analysis orchestrator interface
type IAnalysisService interface {
	Analyze(ctx context.Context, file io.Reader, filename, contentType string, sessionId uuid.UUID) (*dto.AnalyzeResponse, error)
}

type analysisService struct {
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.LLMProvider
	logger      logger.ILogger
	llmCfg      config.LlmConfig
	uploadDir   string
}

func NewAnalysisService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
	llmCfg config.LlmConfig,
	uploadDir string,
) IAnalysisService {
	return &analysisService{
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
		logger:      log,
		llmCfg:      llmCfg,
		uploadDir:   uploadDir,
	}
}

// Analyze stages the upload on disk, runs it through the LLM and stores the
// result. The staged file is removed on every path, success or failure.
func (as *analysisService) Analyze(ctx context.Context, file io.Reader, filename, contentType string, sessionId uuid.UUID) (*dto.AnalyzeResponse, error) {
	if contentType == "" {
		contentType = "unknown"
	}

	tempPath, err := as.stageUpload(file, filename)
	if err != nil {
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	defer os.Remove(tempPath) // best effort, already-gone is fine

	if as.llmCfg.ApiKey == "" {
		return nil, apperror.Configuration("document analysis")
	}

	prompt, err := as.buildPrompt(tempPath, filename, contentType)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	// Analysis runs under its own conversation id, isolated from the chat
	// session it was uploaded from.
	history := []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.AnalyzerSystemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: prompt},
	}
	result, err := as.llmProvider.Chat(ctx, history,
		llm.WithProvider(as.llmCfg.DefaultProvider),
		llm.WithModel(as.llmCfg.DefaultModel),
		llm.WithConversation("analysis_"+sessionId.String()),
		llm.WithMaxTokens(as.llmCfg.MaxTokens),
	)
	if err != nil {
		as.logger.Error("analysis", "llm gateway call failed", map[string]interface{}{
			"session_id": sessionId.String(),
			"filename":   filename,
			"error":      err.Error(),
		})
		return nil, apperror.Collaborator("document analysis", err)
	}

	now := time.Now().UTC()
	analysis := &entity.DocumentAnalysis{
		Id:             uuid.New(),
		Filename:       filename,
		FileType:       contentType,
		AnalysisResult: result,
		CreatedAt:      now,
		SessionId:      sessionId,
	}
	uow := as.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DocumentAnalysisRepository().Create(ctx, analysis); err != nil {
		return nil, apperror.Store("document analysis", err)
	}

	return &dto.AnalyzeResponse{
		Analysis:  result,
		Filename:  filename,
		FileType:  contentType,
		Timestamp: now,
	}, nil
}

func (as *analysisService) stageUpload(file io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(as.uploadDir, 0o755); err != nil {
		return "", err
	}

	tempPath := filepath.Join(as.uploadDir, fmt.Sprintf("%s_%s", uuid.New(), filepath.Base(filename)))
	dst, err := os.Create(tempPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(tempPath)
		return "", err
	}
	return tempPath, nil
}

func (as *analysisService) buildPrompt(tempPath, filename, contentType string) (string, error) {
	if !strings.HasPrefix(contentType, "text/") {
		return fmt.Sprintf("I've uploaded a %s file named '%s'. Please provide analysis guidance for this type of document.", contentType, filename), nil
	}

	content, err := os.ReadFile(tempPath)
	if err != nil {
		return "", err
	}
	runes := []rune(string(content))
	if len(runes) > constant.AnalysisTextLimit {
		runes = runes[:constant.AnalysisTextLimit]
	}
	return fmt.Sprintf("Analyze this document and provide key insights, summary, and recommendations:\n\n%s", string(runes)), nil
}
