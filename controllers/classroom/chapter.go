package classroomController

import (
	"edulan/database"
	"edulan/middleware"
	"edulan/models"
	classroomValidator "edulan/validators/classroom"

	"github.com/gofiber/fiber/v2"
)

func CreateChapter(c *fiber.Ctx) error {
	creator, ok := c.Locals("publicId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedChapter").(*classroomValidator.ChapterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var subject models.Subject
	if err := db.Where("public_id = ? AND is_deleted = ?", reqData.SubjectID, false).First(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	chapter := models.Chapter{
		PublicID:    newPublicID(),
		Name:        reqData.Name,
		Description: reqData.Description,
		SubjectID:   subject.ID,
		SubjectRef:  subject.PublicID,
		CreatedBy:   creator,
	}

	if err := db.Create(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter created successfully.", fiber.Map{
		"chapter_id": chapter.PublicID,
	})
}

func GetChapters(c *fiber.Ctx) error {
	subjectID, ok := c.Locals("subject_id").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject ID!", nil)
	}

	var chapters []models.Chapter
	if err := database.Database.Db.Where("subject_ref = ? AND is_deleted = ?", subjectID, false).
		Order("created_at asc").Find(&chapters).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chapters!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters fetched successfully.", chapters)
}

// GetChapterDetails returns a chapter with its parent subject and class and
// the content list. A dangling parent reference yields a null member, not an
// error.
func GetChapterDetails(c *fiber.Ctx) error {
	chapterID, ok := c.Locals("chapter_id").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter ID!", nil)
	}

	db := database.Database.Db

	var chapter models.Chapter
	if err := db.Where("public_id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	var subjectOut interface{}
	var classOut interface{}

	var subject models.Subject
	if err := db.Where("public_id = ? AND is_deleted = ?", chapter.SubjectRef, false).First(&subject).Error; err == nil {
		subjectOut = subject

		var class models.Class
		if err := db.Where("public_id = ? AND is_deleted = ?", subject.ClassRef, false).First(&class).Error; err == nil {
			classOut = class
		}
	}

	var contents []models.Content
	db.Where("chapter_ref = ? AND is_deleted = ?", chapterID, false).Order("created_at asc").Find(&contents)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter details fetched successfully.", fiber.Map{
		"chapter": chapter,
		"subject": subjectOut,
		"class":   classOut,
		"content": contents,
	})
}
