package controller

import (
	"agentic-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
}

type uploadController struct {
	service service.IAnalysisService
}

func NewUploadController(service service.IAnalysisService) IUploadController {
	return &uploadController{service: service}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	r.Post("/upload/analyze", c.Analyze)
}

func (c *uploadController) Analyze(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "file is required"})
	}

	sessionId, err := uuid.Parse(ctx.FormValue("session_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "valid session_id is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "unable to read uploaded file"})
	}
	defer file.Close()

	res, err := c.service.Analyze(
		ctx.Context(),
		file,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		sessionId,
	)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
