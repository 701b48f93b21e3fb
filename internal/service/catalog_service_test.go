package service

import (
	"testing"

	"agentic-ai-be/internal/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAvailableModels_ListsEveryProvider(t *testing.T) {
	svc := NewCatalogService()

	res := svc.GetAvailableModels()
	require.NotNil(t, res)

	assert.Len(t, res.Providers, len(constant.ModelCatalog))
	for provider := range constant.ModelCatalog {
		assert.NotEmpty(t, res.Providers[provider], "provider %s has no models", provider)
	}
	assert.Equal(t, constant.DefaultModelProvider, res.Default.Provider)
	assert.Equal(t, constant.DefaultModelName, res.Default.Model)
	assert.Contains(t, res.Providers[constant.DefaultModelProvider], constant.DefaultModelName)
}

func TestGetAvailableModels_StableAcrossCalls(t *testing.T) {
	svc := NewCatalogService()

	first := svc.GetAvailableModels()
	second := svc.GetAvailableModels()

	assert.Equal(t, first, second)
}
