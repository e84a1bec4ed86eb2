package classroomValidator

import (
	"edulan/middleware"
	"edulan/validators"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ClassRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Grade       string `json:"grade"`
}

type SubjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ClassID     string `json:"class_id" validate:"required"`
}

type ChapterRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	SubjectID   string `json:"subject_id" validate:"required"`
}

func CreateClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ClassRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.CheckStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedClass", reqData)
		return c.Next()
	}
}

func CreateSubject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubjectRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.CheckStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubject", reqData)
		return c.Next()
	}
}

func CreateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChapterRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.CheckStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChapter", reqData)
		return c.Next()
	}
}

// RequireParam validates a non-empty route parameter and stashes it under
// the same name.
func RequireParam(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		value := strings.TrimSpace(c.Params(name))
		if value == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing route parameter: "+name, nil)
		}

		c.Locals(name, value)
		return c.Next()
	}
}
