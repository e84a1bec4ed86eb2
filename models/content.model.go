package models

import "gorm.io/gorm"

// Content is a piece of learning material inside a chapter. FilePath is
// either a URL, a local filesystem path, or a path that resolves through a
// network mount; a mounted LAN share is not a distinct case.
type Content struct {
	gorm.Model
	PublicID    string `json:"id" gorm:"uniqueIndex;not null"`
	Title       string `json:"title"`
	ContentType string `json:"content_type"` // document, spreadsheet, presentation, pdf, image, video, audio, webpage, text, file
	FilePath    string `json:"file_path"`
	Filename    string `json:"filename"` // original name for uploaded files
	Description string `json:"description"`
	ChapterID   uint   `json:"-" gorm:"index;not null"`
	ChapterRef  string `json:"chapter_id" gorm:"index"`
	CreatedBy   string `json:"created_by"`
	Available   bool   `json:"available" gorm:"default:true"` // maintained by the availability sweep
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
