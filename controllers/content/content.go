package contentController

import (
	"edulan/database"
	"edulan/middleware"
	"edulan/models"
	"edulan/utils"
	contentValidator "edulan/validators/content"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func CreateContent(c *fiber.Ctx) error {
	creator, ok := c.Locals("publicId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedContent").(*contentValidator.ContentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var chapter models.Chapter
	if err := db.Where("public_id = ? AND is_deleted = ?", reqData.ChapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	if !utils.IsValidPath(reqData.FilePath) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid file path or file does not exist!", nil)
	}

	contentType := reqData.ContentType
	if contentType == "" || contentType == "auto" {
		contentType = utils.ClassifyPath(reqData.FilePath)
	}

	content := models.Content{
		PublicID:    uuid.NewString(),
		Title:       reqData.Title,
		ContentType: contentType,
		FilePath:    reqData.FilePath,
		Description: reqData.Description,
		ChapterID:   chapter.ID,
		ChapterRef:  chapter.PublicID,
		CreatedBy:   creator,
	}

	if err := db.Create(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully.", fiber.Map{
		"content_id":   content.PublicID,
		"content_type": content.ContentType,
	})
}

func GetContent(c *fiber.Ctx) error {
	chapterID, ok := c.Locals("chapter_id").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid chapter ID!", nil)
	}

	var contents []models.Content
	if err := database.Database.Db.Where("chapter_ref = ? AND is_deleted = ?", chapterID, false).
		Order("created_at asc").Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully.", contents)
}

// OpenContent resolves a content row to something the client can open: a URL
// is handed back as-is, a local path is re-validated first.
func OpenContent(c *fiber.Ctx) error {
	contentID, ok := c.Locals("content_id").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid content ID!", nil)
	}

	var content models.Content
	if err := database.Database.Db.Where("public_id = ? AND is_deleted = ?", contentID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	if strings.HasPrefix(content.FilePath, "http://") || strings.HasPrefix(content.FilePath, "https://") {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Content resolved.", fiber.Map{
			"type": "url",
			"path": content.FilePath,
		})
	}

	if !utils.IsValidPath(content.FilePath) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "File not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content resolved.", fiber.Map{
		"type":         "file",
		"path":         content.FilePath,
		"content_type": content.ContentType,
		"title":        content.Title,
	})
}
