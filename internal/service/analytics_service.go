package service

import (
	"context"
	"time"

	"agentic-ai-be/internal/apperror"
	"agentic-ai-be/internal/constant"
	"agentic-ai-be/internal/dto"
	"agentic-ai-be/internal/repository/specification"
	"agentic-ai-be/internal/repository/unitofwork"
)

// IAnalyticsService defines the usage aggregator interface
type IAnalyticsService interface {
	GetStats(ctx context.Context) (*dto.AnalyticsResponse, error)
}

const recentWindow = 7 * 24 * time.Hour

type analyticsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAnalyticsService(uowFactory unitofwork.RepositoryFactory) IAnalyticsService {
	return &analyticsService{uowFactory: uowFactory}
}

// GetStats recomputes every count on each call; nothing here is cached.
func (as *analyticsService) GetStats(ctx context.Context) (*dto.AnalyticsResponse, error) {
	uow := as.uowFactory.NewUnitOfWork(ctx)

	totalSessions, err := uow.ChatSessionRepository().Count(ctx)
	if err != nil {
		return nil, apperror.Store("fetch analytics", err)
	}
	totalMessages, err := uow.ChatMessageRepository().Count(ctx)
	if err != nil {
		return nil, apperror.Store("fetch analytics", err)
	}
	totalAnalyses, err := uow.DocumentAnalysisRepository().Count(ctx)
	if err != nil {
		return nil, apperror.Store("fetch analytics", err)
	}

	cutoff := time.Now().UTC().Add(-recentWindow)
	recentSessions, err := uow.ChatSessionRepository().Count(ctx,
		specification.CreatedSince{Cutoff: cutoff},
	)
	if err != nil {
		return nil, apperror.Store("fetch analytics", err)
	}

	return &dto.AnalyticsResponse{
		TotalSessions:  totalSessions,
		TotalMessages:  totalMessages,
		TotalAnalyses:  totalAnalyses,
		RecentSessions: recentSessions,
		Platform:       constant.PlatformName,
	}, nil
}
