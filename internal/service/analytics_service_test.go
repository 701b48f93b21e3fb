package service

import (
	"context"
	"testing"
	"time"

	"agentic-ai-be/internal/constant"
	"agentic-ai-be/internal/repository/specification"
	"agentic-ai-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats_AggregatesCounts(t *testing.T) {
	uow := testutil.NewMockUnitOfWork()

	var recentCutoff time.Time
	uow.Sessions.CountFunc = func(ctx context.Context, specs ...specification.Specification) (int64, error) {
		for _, s := range specs {
			if since, ok := s.(specification.CreatedSince); ok {
				recentCutoff = since.Cutoff
				return 3, nil
			}
		}
		return 12, nil
	}
	uow.Messages.CountFunc = func(ctx context.Context, specs ...specification.Specification) (int64, error) {
		return 48, nil
	}
	uow.Analyses.CountFunc = func(ctx context.Context, specs ...specification.Specification) (int64, error) {
		return 5, nil
	}

	svc := NewAnalyticsService(uow)

	res, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), res.TotalSessions)
	assert.Equal(t, int64(48), res.TotalMessages)
	assert.Equal(t, int64(5), res.TotalAnalyses)
	assert.Equal(t, int64(3), res.RecentSessions)
	assert.Equal(t, constant.PlatformName, res.Platform)

	// The recent window is seven days back from now.
	expected := time.Now().UTC().Add(-7 * 24 * time.Hour)
	assert.WithinDuration(t, expected, recentCutoff, time.Minute)
}
