package contentController

import (
	"edulan/config"
	"edulan/middleware"
	"edulan/utils"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
)

// ServeMedia streams a stored file from the upload root. The Content-Type
// comes from the video fallback table first (generic MIME lookup misses
// several video containers), then from content sniffing.
func ServeMedia(c *fiber.Ctx) error {
	rel, err := resolveMediaPath(c.Params("*"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "File not found!", nil)
	}

	abs := filepath.Join(config.AppConfig.UploadDir, rel)
	info, err := os.Stat(abs)
	if err != nil || !info.Mode().IsRegular() {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "File not found!", nil)
	}

	contentType := utils.VideoMIME(abs)
	if contentType == "" {
		if detected, err := mimetype.DetectFile(abs); err == nil {
			contentType = detected.String()
		} else {
			contentType = "application/octet-stream"
		}
	}

	f, err := os.Open(abs)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to open file!", nil)
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.SendStream(f, int(info.Size()))
}

// resolveMediaPath normalizes the wildcard path and rejects anything that
// would escape the upload root.
func resolveMediaPath(raw string) (string, error) {
	decoded := strings.TrimPrefix(raw, "/")
	// Requests arriving via /uploads/* already carry the root segment.
	decoded = strings.TrimPrefix(decoded, filepath.ToSlash(config.AppConfig.UploadDir)+"/")

	cleaned := filepath.Clean(filepath.FromSlash(decoded))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", os.ErrNotExist
	}
	return cleaned, nil
}
