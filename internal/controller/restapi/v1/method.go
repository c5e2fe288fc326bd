package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lmmlab/paper-writer/internal/controller/restapi/v1/response"
	"github.com/lmmlab/paper-writer/internal/controller/restapi/v1/validate"
	"github.com/lmmlab/paper-writer/internal/dto"
	"github.com/lmmlab/paper-writer/pkg/types/errs"
)

// @Summary  	Generate a "Proposed Method" section
// @Description Accepts a domain description and architecture diagrams, proxies them to the vision model and returns the generated section
// @Tags 		method
// @Accept 		mpfd
// @Produce 	json
// @Param 		domain formData string false "Domain description and key concepts"
// @Param 		images formData file   true  "Architecture diagrams(jpg, jpeg, png), repeatable"
// @Success 	201 {object} response.GenerateMethod
// @Failure 	400 {object} response.Error "No images or wrong parameters"
// @Failure 	413 {object} response.Error "File too large"
// @Failure 	415 {object} response.Error "Unsupported format"
// @Failure 	502 {object} response.Error "Model call failed"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/method [post]
func (r *V1) generateMethod(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, kindBadRequest, "multipart form is required")
	}

	// 1. валидация количества изображений
	files := form.File["images"]
	if len(files) == 0 {
		return errorResponse(ctx, http.StatusBadRequest, kindNoImages, "at least one image is required")
	}

	// 2. валидация текста домена
	domain := ctx.FormValue("domain")
	if len(domain) > validate.MaxDomainLen {
		return errorResponse(ctx, http.StatusBadRequest, kindBadRequest,
			fmt.Sprintf("domain text cant be longer than %d bytes", validate.MaxDomainLen))
	}

	uploads := make([]dto.ImageUpload, 0, len(files))

	for _, file := range files {
		// 3. валидация размера
		if file.Size == 0 {
			return errorResponse(ctx, http.StatusBadRequest, kindBadRequest, "file is empty")
		}

		if file.Size > validate.MaxFileSize {
			return errorResponse(ctx, http.StatusRequestEntityTooLarge, kindPayloadTooLarge,
				fmt.Sprintf("file size cant be more than %d bytes", validate.MaxFileSize))
		}

		// 4. валидация content type
		contentType := file.Header.Get("Content-Type")
		if !validate.AllowedContentTypes[contentType] {
			return errorResponse(ctx, http.StatusUnsupportedMediaType, kindUnsupportedFormat,
				"unsupported file type. Allowed: jpeg, png")
		}

		// 5. валидация расширения
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !validate.AllowedExtensions[ext] {
			return errorResponse(ctx, http.StatusUnsupportedMediaType, kindUnsupportedFormat,
				"unsupported file extension. Allowed: .jpg, .jpeg, .png")
		}

		// 6. чтение файла
		fileReader, err := file.Open()
		if err != nil {
			r.logger.Error(err, "restapi - v1 - generateMethod")

			return errorResponse(ctx, http.StatusInternalServerError, kindInternal, "problems with opening the file")
		}

		data, err := io.ReadAll(fileReader)
		fileReader.Close()
		if err != nil {
			r.logger.Error(err, "restapi - v1 - generateMethod")

			return errorResponse(ctx, http.StatusInternalServerError, kindInternal, "problems with reading the file")
		}

		uploads = append(uploads, dto.ImageUpload{
			Name:        file.Filename,
			ContentType: contentType,
			Data:        data,
		})
	}

	// 7. генерация
	section, err := r.method.Generate(ctx.UserContext(), domain, uploads)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoImages):
			return errorResponse(ctx, http.StatusBadRequest, kindNoImages, "at least one image is required")
		case errors.Is(err, errs.ErrImageDecode), errors.Is(err, errs.ErrUnsupportedFormat):
			return errorResponse(ctx, http.StatusUnsupportedMediaType, kindUnsupportedFormat, "image could not be decoded")
		case errors.Is(err, errs.ErrImageTooLarge):
			return errorResponse(ctx, http.StatusRequestEntityTooLarge, kindPayloadTooLarge,
				"image exceeds the transport limit even after normalization")
		case errors.Is(err, errs.ErrGeneration):
			r.logger.Error(err, "restapi - v1 - generateMethod")

			return errorResponse(ctx, http.StatusBadGateway, kindGenerationFailed, "model call failed")
		default:
			r.logger.Error(err, "restapi - v1 - generateMethod")

			return errorResponse(ctx, http.StatusInternalServerError, kindInternal, "internal error")
		}
	}

	// 8. ответ
	resp := response.GenerateMethod{
		ID:               section.ID.String(),
		Method:           section.Content,
		Model:            section.Model,
		ImageCount:       section.ImageCount,
		PromptTokens:     section.PromptTokens,
		CompletionTokens: section.CompletionTokens,
		CreatedAt:        section.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	return ctx.Status(http.StatusCreated).JSON(resp)
}
