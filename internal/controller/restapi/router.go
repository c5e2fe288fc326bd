package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/lmmlab/paper-writer/config"
	v1 "github.com/lmmlab/paper-writer/internal/controller/restapi/v1"
	"github.com/lmmlab/paper-writer/internal/usecase"
	"github.com/lmmlab/paper-writer/pkg/logger"
)

// @title Paper Writer
// @version 1.0.0
// @host localhost:8080
// @BasePath /v1
func NewRouter(app *fiber.App, cfg *config.Config, m usecase.MethodUseCase, l logger.Interface) {
	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// Routers
	apiV1Group := app.Group("/v1")
	{
		v1.NewMethodRoutes(apiV1Group, m, l)
	}
}
