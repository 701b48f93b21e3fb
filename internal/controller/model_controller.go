package controller

import (
	"agentic-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IModelController interface {
	RegisterRoutes(r fiber.Router)
	GetModels(ctx *fiber.Ctx) error
}

type modelController struct {
	service service.ICatalogService
}

func NewModelController(service service.ICatalogService) IModelController {
	return &modelController{service: service}
}

func (c *modelController) RegisterRoutes(r fiber.Router) {
	r.Get("/models", c.GetModels)
}

func (c *modelController) GetModels(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.GetAvailableModels())
}
