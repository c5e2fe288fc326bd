package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lmmlab/paper-writer/internal/controller/restapi/v1/response"
)

const (
	kindBadRequest        = "bad_request"
	kindNoImages          = "no_images"
	kindPayloadTooLarge   = "payload_too_large"
	kindUnsupportedFormat = "unsupported_format"
	kindGenerationFailed  = "generation_failed"
	kindInternal          = "internal"
)

func errorResponse(ctx *fiber.Ctx, code int, kind, message string) error {
	return ctx.Status(code).JSON(response.Error{Kind: kind, Message: message})
}
