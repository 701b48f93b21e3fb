package implementation

import (
	"context"

	"agentic-ai-be/internal/entity"
	"agentic-ai-be/internal/mapper"
	"agentic-ai-be/internal/model"
	"agentic-ai-be/internal/repository/contract"
	"agentic-ai-be/internal/repository/specification"

	"gorm.io/gorm"
)

type DocumentAnalysisRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnalysisMapper
}

func NewDocumentAnalysisRepository(db *gorm.DB) contract.DocumentAnalysisRepository {
	return &DocumentAnalysisRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnalysisMapper(),
	}
}

func (r *DocumentAnalysisRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DocumentAnalysisRepositoryImpl) Create(ctx context.Context, analysis *entity.DocumentAnalysis) error {
	m := r.mapper.ToModel(analysis)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *DocumentAnalysisRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentAnalysis, error) {
	var models []*model.DocumentAnalysis
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.DocumentAnalysis, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *DocumentAnalysisRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.DocumentAnalysis{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
