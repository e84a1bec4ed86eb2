package assignmentController

import (
	"edulan/database"
	"edulan/middleware"
	"edulan/models"
	assignmentValidator "edulan/validators/assignment"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func CreateAssignment(c *fiber.Ctx) error {
	creator, ok := c.Locals("publicId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAssignment").(*assignmentValidator.AssignmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var chapter models.Chapter
	if err := db.Where("public_id = ? AND is_deleted = ?", reqData.ChapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	var dueDate *time.Time
	if reqData.DueDate != "" {
		parsed, err := time.Parse(time.RFC3339, reqData.DueDate)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid due_date, expected RFC3339!", nil)
		}
		dueDate = &parsed
	}

	assignment := models.Assignment{
		PublicID:    uuid.NewString(),
		Title:       reqData.Title,
		Description: reqData.Description,
		ChapterID:   chapter.ID,
		ChapterRef:  chapter.PublicID,
		DueDate:     dueDate,
		CreatedBy:   creator,
	}

	if err := db.Create(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created successfully.", fiber.Map{
		"assignment_id": assignment.PublicID,
	})
}

func GetAssignments(c *fiber.Ctx) error {
	chapterID, ok := c.Locals("chapter_id").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter ID!", nil)
	}

	var assignments []models.Assignment
	if err := database.Database.Db.Where("chapter_ref = ? AND is_deleted = ?", chapterID, false).
		Order("created_at asc").Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully.", assignments)
}

func CreateQuiz(c *fiber.Ctx) error {
	creator, ok := c.Locals("publicId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedQuiz").(*assignmentValidator.QuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var chapter models.Chapter
	if err := db.Where("public_id = ? AND is_deleted = ?", reqData.ChapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	quiz := models.Quiz{
		PublicID:   uuid.NewString(),
		Title:      reqData.Title,
		Questions:  reqData.Questions,
		ChapterID:  chapter.ID,
		ChapterRef: chapter.PublicID,
		CreatedBy:  creator,
	}

	if err := db.Create(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully.", fiber.Map{
		"quiz_id": quiz.PublicID,
	})
}

func GetQuizzes(c *fiber.Ctx) error {
	chapterID, ok := c.Locals("chapter_id").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter ID!", nil)
	}

	var quizzes []models.Quiz
	if err := database.Database.Db.Where("chapter_ref = ? AND is_deleted = ?", chapterID, false).
		Order("created_at asc").Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully.", quizzes)
}
