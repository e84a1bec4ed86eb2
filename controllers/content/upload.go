package contentController

import (
	"edulan/config"
	"edulan/database"
	"edulan/middleware"
	"edulan/models"
	"edulan/utils"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadFile stores a multipart upload under the configured upload root and
// registers it as content in the target chapter. The stored content type is
// the coarse upload bucket (image/video/document), not the ten-way viewer
// tag used for referenced paths.
func UploadFile(c *fiber.Ctx) error {
	creator, ok := c.Locals("publicId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	chapterID, ok := c.Locals("chapterId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "chapter_id query parameter is required!", nil)
	}

	db := database.Database.Db

	var chapter models.Chapter
	if err := db.Where("public_id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded!", nil)
	}

	bucket := utils.UploadBucket(file.Filename)
	destDir := filepath.Join(config.AppConfig.UploadDir, bucket+"s")

	storedPath, err := utils.SaveUploadedFile(file, destDir)
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded file!", nil)
	}

	title, _ := c.Locals("uploadTitle").(string)
	if title == "" {
		title = file.Filename
	}

	content := models.Content{
		PublicID:    uuid.NewString(),
		Title:       title,
		ContentType: bucket,
		FilePath:    filepath.ToSlash(storedPath),
		Filename:    file.Filename,
		ChapterID:   chapter.ID,
		ChapterRef:  chapter.PublicID,
		CreatedBy:   creator,
	}

	if err := db.Create(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded successfully.", fiber.Map{
		"content_id":   content.PublicID,
		"content_type": content.ContentType,
		"file_path":    content.FilePath,
		"filename":     content.Filename,
	})
}
