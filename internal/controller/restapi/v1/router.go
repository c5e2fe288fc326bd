package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lmmlab/paper-writer/internal/usecase"
	"github.com/lmmlab/paper-writer/pkg/logger"
)

func NewMethodRoutes(apiV1Group fiber.Router, m usecase.MethodUseCase, l logger.Interface) {
	r := &V1{method: m, logger: l}

	{
		// API
		apiV1Group.Post("/method", r.generateMethod)

		// UI
		apiV1Group.Get("/", r.showUI)
	}
}
