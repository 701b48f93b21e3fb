package mapper

import (
	"agentic-ai-be/internal/entity"
	"agentic-ai-be/internal/model"
)

type AnalysisMapper struct{}

func NewAnalysisMapper() *AnalysisMapper {
	return &AnalysisMapper{}
}

func (m *AnalysisMapper) ToModel(a *entity.DocumentAnalysis) *model.DocumentAnalysis {
	if a == nil {
		return nil
	}
	return &model.DocumentAnalysis{
		Id:             a.Id,
		Filename:       a.Filename,
		FileType:       a.FileType,
		AnalysisResult: a.AnalysisResult,
		CreatedAt:      a.CreatedAt.UTC(),
		SessionId:      a.SessionId,
	}
}

func (m *AnalysisMapper) ToEntity(a *model.DocumentAnalysis) *entity.DocumentAnalysis {
	if a == nil {
		return nil
	}
	return &entity.DocumentAnalysis{
		Id:             a.Id,
		Filename:       a.Filename,
		FileType:       a.FileType,
		AnalysisResult: a.AnalysisResult,
		CreatedAt:      a.CreatedAt,
		SessionId:      a.SessionId,
	}
}
