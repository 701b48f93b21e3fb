package bootstrap

import (
	"agentic-ai-be/internal/config"
	"agentic-ai-be/internal/controller"
	"agentic-ai-be/internal/pkg/logger"
	"agentic-ai-be/internal/repository/memory"
	"agentic-ai-be/internal/repository/unitofwork"
	"agentic-ai-be/internal/service"
	"agentic-ai-be/pkg/llm/factory"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SystemController    controller.ISystemController
	ChatController      controller.IChatController
	UploadController    controller.IUploadController
	ModelController     controller.IModelController
	AnalyticsController controller.IAnalyticsController

	// Shared infrastructure
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Collaborators
	llmProvider := factory.NewLLMProvider(cfg.Llm)
	contextRepo := memory.NewContextRepository()

	// 3. Services
	chatService := service.NewChatService(uowFactory, llmProvider, contextRepo, sysLogger, cfg.Llm)
	analysisService := service.NewAnalysisService(uowFactory, llmProvider, sysLogger, cfg.Llm, cfg.Upload.Dir)
	analyticsService := service.NewAnalyticsService(uowFactory)
	catalogService := service.NewCatalogService()

	// 4. Controllers
	return &Container{
		SystemController:    controller.NewSystemController(),
		ChatController:      controller.NewChatController(chatService),
		UploadController:    controller.NewUploadController(analysisService),
		ModelController:     controller.NewModelController(catalogService),
		AnalyticsController: controller.NewAnalyticsController(analyticsService),

		Logger: sysLogger,
	}
}
