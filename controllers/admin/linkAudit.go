package adminController

import (
	"edulan/config"
	"edulan/database"
	"edulan/middleware"
	"edulan/models"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

// LinkReport is the audit verdict for one URL-backed content row.
type LinkReport struct {
	ContentID  string `json:"content_id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Alive      bool   `json:"alive"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// AuditContentLinks HEAD-probes every stored http(s) content location and
// reports dead links. This is advisory: create-time validation keeps
// trusting URLs, so this is how an admin finds rot after the fact.
func AuditContentLinks(c *fiber.Ctx) error {
	var contents []models.Content
	if err := database.Database.Db.
		Where("is_deleted = ? AND (file_path LIKE ? OR file_path LIKE ?)", false, "http://%", "https://%").
		Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load content rows!", nil)
	}

	client := resty.New().
		SetTimeout(time.Duration(config.AppConfig.LinkAuditTimeoutSec) * time.Second).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))

	reports := make([]LinkReport, 0, len(contents))
	deadCount := 0

	for _, content := range contents {
		report := LinkReport{
			ContentID: content.PublicID,
			Title:     content.Title,
			URL:       content.FilePath,
		}

		resp, err := client.R().Head(content.FilePath)
		if err != nil {
			report.Error = err.Error()
		} else {
			report.StatusCode = resp.StatusCode()
			report.Alive = resp.StatusCode() < 400
		}

		// Some servers reject HEAD outright; retry those with GET before
		// declaring the link dead.
		if !report.Alive && err == nil && (resp.StatusCode() == fiber.StatusMethodNotAllowed || resp.StatusCode() == fiber.StatusNotImplemented) {
			if getResp, getErr := client.R().Get(content.FilePath); getErr == nil {
				report.StatusCode = getResp.StatusCode()
				report.Alive = getResp.StatusCode() < 400
				report.Error = ""
			}
		}

		if !report.Alive {
			deadCount++
		}
		reports = append(reports, report)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Link audit complete.", fiber.Map{
		"checked": len(reports),
		"dead":    deadCount,
		"reports": reports,
	})
}
