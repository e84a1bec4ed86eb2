package contentValidator

import (
	"edulan/middleware"
	"edulan/validators"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ContentRequest struct {
	Title       string `json:"title" validate:"required"`
	ContentType string `json:"content_type"`
	FilePath    string `json:"file_path" validate:"required"`
	Description string `json:"description"`
	ChapterID   string `json:"chapter_id" validate:"required"`
}

func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.CheckStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}

// UploadFile validates the upload query parameters; the multipart body is
// checked by the handler itself.
func UploadFile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		chapterID := strings.TrimSpace(c.Query("chapter_id"))
		if chapterID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "chapter_id query parameter is required!", nil)
		}

		c.Locals("chapterId", chapterID)
		c.Locals("uploadTitle", strings.TrimSpace(c.Query("title")))
		return c.Next()
	}
}
