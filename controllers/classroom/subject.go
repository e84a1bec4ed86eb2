package classroomController

import (
	"edulan/database"
	"edulan/middleware"
	"edulan/models"
	classroomValidator "edulan/validators/classroom"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func newPublicID() string {
	return uuid.NewString()
}

func CreateSubject(c *fiber.Ctx) error {
	creator, ok := c.Locals("publicId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSubject").(*classroomValidator.SubjectRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var class models.Class
	if err := db.Where("public_id = ? AND is_deleted = ?", reqData.ClassID, false).First(&class).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Class not found!", nil)
	}

	subject := models.Subject{
		PublicID:    newPublicID(),
		Name:        reqData.Name,
		Description: reqData.Description,
		ClassID:     class.ID,
		ClassRef:    class.PublicID,
		CreatedBy:   creator,
	}

	if err := db.Create(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subject created successfully.", fiber.Map{
		"subject_id": subject.PublicID,
	})
}

func GetSubjects(c *fiber.Ctx) error {
	classID, ok := c.Locals("class_id").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid class ID!", nil)
	}

	var subjects []models.Subject
	if err := database.Database.Db.Where("class_ref = ? AND is_deleted = ?", classID, false).
		Order("created_at asc").Find(&subjects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subjects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subjects fetched successfully.", subjects)
}
