package models

import (
	"time"

	"gorm.io/gorm"
)

// Assignment is homework attached to a chapter.
type Assignment struct {
	gorm.Model
	PublicID    string     `json:"id" gorm:"uniqueIndex;not null"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ChapterID   uint       `json:"-" gorm:"index;not null"`
	ChapterRef  string     `json:"chapter_id" gorm:"index"`
	DueDate     *time.Time `json:"due_date"`
	CreatedBy   string     `json:"created_by"`
	IsDeleted   bool       `json:"-" gorm:"default:false"`
}

// Quiz stores its questions as a JSON document; the backend treats them as
// opaque and leaves rendering/grading to the client.
type Quiz struct {
	gorm.Model
	PublicID   string `json:"id" gorm:"uniqueIndex;not null"`
	Title      string `json:"title"`
	Questions  string `json:"questions" gorm:"type:text"`
	ChapterID  uint   `json:"-" gorm:"index;not null"`
	ChapterRef string `json:"chapter_id" gorm:"index"`
	CreatedBy  string `json:"created_by"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}
