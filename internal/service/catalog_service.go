package service

import (
	"agentic-ai-be/internal/constant"
	"agentic-ai-be/internal/dto"
)

// ICatalogService exposes the static model registry
type ICatalogService interface {
	GetAvailableModels() *dto.ModelCatalogResponse
}

type catalogService struct{}

func NewCatalogService() ICatalogService {
	return &catalogService{}
}

func (cs *catalogService) GetAvailableModels() *dto.ModelCatalogResponse {
	return &dto.ModelCatalogResponse{
		Providers: constant.ModelCatalog,
		Default: dto.ModelDefault{
			Provider: constant.DefaultModelProvider,
			Model:    constant.DefaultModelName,
		},
	}
}
