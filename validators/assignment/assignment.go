package assignmentValidator

import (
	"edulan/middleware"
	"edulan/validators"

	"github.com/gofiber/fiber/v2"
)

type AssignmentRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ChapterID   string `json:"chapter_id" validate:"required"`
	DueDate     string `json:"due_date"` // RFC3339, optional
}

type QuizRequest struct {
	Title     string `json:"title" validate:"required"`
	Questions string `json:"questions" validate:"required"`
	ChapterID string `json:"chapter_id" validate:"required"`
}

func CreateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AssignmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.CheckStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuizRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.CheckStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
