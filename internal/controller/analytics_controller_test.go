package controller

import (
	"context"
	"net/http/httptest"
	"testing"

	"agentic-ai-be/internal/constant"
	"agentic-ai-be/internal/dto"
	"agentic-ai-be/internal/pkg/serverutils"
	"agentic-ai-be/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAnalyticsService struct {
	GetStatsFunc func(ctx context.Context) (*dto.AnalyticsResponse, error)
}

func (m *mockAnalyticsService) GetStats(ctx context.Context) (*dto.AnalyticsResponse, error) {
	return m.GetStatsFunc(ctx)
}

func TestStatsEndpoint_ReturnsAggregates(t *testing.T) {
	svc := &mockAnalyticsService{
		GetStatsFunc: func(ctx context.Context) (*dto.AnalyticsResponse, error) {
			return &dto.AnalyticsResponse{
				TotalSessions:  10,
				TotalMessages:  40,
				TotalAnalyses:  3,
				RecentSessions: 2,
				Platform:       constant.PlatformName,
			}, nil
		},
	}

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(testutil.NopLogger{}))
	NewAnalyticsController(svc).RegisterRoutes(app.Group("/api"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/analytics/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res dto.AnalyticsResponse
	decodeBody(t, resp.Body, &res)
	assert.Equal(t, int64(10), res.TotalSessions)
	assert.Equal(t, int64(40), res.TotalMessages)
	assert.Equal(t, int64(3), res.TotalAnalyses)
	assert.Equal(t, int64(2), res.RecentSessions)
	assert.Equal(t, constant.PlatformName, res.Platform)
}
