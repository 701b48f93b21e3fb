package contract

import (
	"context"

	"agentic-ai-be/internal/entity"
	"agentic-ai-be/internal/repository/specification"
)

type DocumentAnalysisRepository interface {
	Create(ctx context.Context, analysis *entity.DocumentAnalysis) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentAnalysis, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
