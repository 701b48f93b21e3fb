package controller

import (
	"net/http/httptest"
	"testing"

	"agentic-ai-be/internal/constant"
	"agentic-ai-be/internal/dto"
	"agentic-ai-be/internal/pkg/serverutils"
	"agentic-ai-be/internal/service"
	"agentic-ai-be/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	app := fiber.New()
	NewSystemController().RegisterRoutes(app.Group("/api"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res map[string]string
	decodeBody(t, resp.Body, &res)
	assert.Equal(t, "healthy", res["status"])
	assert.Equal(t, constant.PlatformName, res["platform"])
	assert.Equal(t, constant.PlatformVersion, res["version"])
}

func TestRootEndpoint(t *testing.T) {
	app := fiber.New()
	NewSystemController().RegisterRoutes(app.Group("/api"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res map[string]string
	decodeBody(t, resp.Body, &res)
	assert.Contains(t, res["message"], constant.PlatformName)
}

func TestModelsEndpoint_ServesCatalog(t *testing.T) {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(testutil.NopLogger{}))
	NewModelController(service.NewCatalogService()).RegisterRoutes(app.Group("/api"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/models", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res dto.ModelCatalogResponse
	decodeBody(t, resp.Body, &res)
	assert.Equal(t, constant.DefaultModelProvider, res.Default.Provider)
	assert.Equal(t, constant.DefaultModelName, res.Default.Model)
	assert.NotEmpty(t, res.Providers[constant.DefaultModelProvider])
}
