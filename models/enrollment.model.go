package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment links a user to a class tree and caches aggregate progress.
// The cached percentage is recomputed synchronously on every progress upsert
// and must never diverge from the underlying Progress rows.
type Enrollment struct {
	gorm.Model
	PublicID          string     `json:"id" gorm:"uniqueIndex;not null"`
	UserID            uint       `json:"-" gorm:"index;not null"`
	UserRef           string     `json:"user_id" gorm:"index"`
	ClassID           uint       `json:"-" gorm:"index;not null"`
	ClassRef          string     `json:"class_id" gorm:"index"`
	Progress          float64    `json:"progress" gorm:"default:0"` // completion percentage (0-100)
	CompletedChapters int        `json:"completed_chapters" gorm:"default:0"`
	TotalChapters     int        `json:"total_chapters" gorm:"default:0"`
	Completed         bool       `json:"completed" gorm:"default:false"`
	CompletedAt       *time.Time `json:"completed_at"`
	IsDeleted         bool       `json:"-" gorm:"default:false"`
}

// Progress is one logical record per (user, chapter) pair with upsert
// semantics; a second update overwrites completion state, never duplicates.
type Progress struct {
	gorm.Model
	UserID     uint   `json:"-" gorm:"uniqueIndex:idx_user_chapter;not null"`
	UserRef    string `json:"user_id" gorm:"index"`
	ChapterID  uint   `json:"-" gorm:"uniqueIndex:idx_user_chapter;not null"`
	ChapterRef string `json:"chapter_id" gorm:"index"`
	Completed  bool   `json:"completed" gorm:"default:false"`
}
