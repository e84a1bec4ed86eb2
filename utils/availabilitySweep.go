package utils

import (
	"edulan/database"
	"edulan/models"
	"log"
	"strings"

	"github.com/robfig/cron/v3"
)

// SweepContentAvailability re-checks every stored local content path and
// flips the Available flag where the file appeared or disappeared on the
// share. URLs are left alone; the validator trusts them and the admin link
// audit covers them on demand.
func SweepContentAvailability() {
	db := database.Database.Db

	var contents []models.Content
	if err := db.Where("is_deleted = ?", false).Find(&contents).Error; err != nil {
		log.Printf("Availability sweep: failed to load content rows: %v", err)
		return
	}

	checked := 0
	changed := 0
	for i := range contents {
		content := &contents[i]
		if strings.HasPrefix(content.FilePath, "http://") || strings.HasPrefix(content.FilePath, "https://") {
			continue
		}

		checked++
		available := IsValidPath(content.FilePath)
		if available == content.Available {
			continue
		}

		if err := db.Model(content).Update("available", available).Error; err != nil {
			log.Printf("Availability sweep: failed to update content %s: %v", content.PublicID, err)
			continue
		}
		changed++
		if !available {
			log.Printf("Availability sweep: content %s (%s) is no longer reachable", content.PublicID, content.FilePath)
		}
	}

	log.Printf("Availability sweep finished: %d local paths checked, %d flags changed", checked, changed)
}

// InitializeAvailabilitySweep schedules the hourly sweep and returns the
// running scheduler so the caller owns its lifetime.
func InitializeAvailabilitySweep() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@every 1h", SweepContentAvailability); err != nil {
		log.Printf("Failed to schedule availability sweep: %v", err)
		return c
	}

	c.Start()
	log.Println("Content availability sweep scheduled (hourly).")
	return c
}
