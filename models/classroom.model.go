package models

import "gorm.io/gorm"

// Class is the root of the content tree: class -> subject -> chapter -> content.
// Parent references are application-enforced; a dangling reference simply
// yields an absent parent when traversed.
type Class struct {
	gorm.Model
	PublicID    string `json:"id" gorm:"uniqueIndex;not null"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Grade       string `json:"grade"`
	CreatedBy   string `json:"created_by"` // public id of the creating user
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}

// Subject belongs to exactly one Class.
type Subject struct {
	gorm.Model
	PublicID    string `json:"id" gorm:"uniqueIndex;not null"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ClassID     uint   `json:"-" gorm:"index;not null"`
	ClassRef    string `json:"class_id" gorm:"index"` // public id of the parent class
	CreatedBy   string `json:"created_by"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}

// Chapter belongs to exactly one Subject.
type Chapter struct {
	gorm.Model
	PublicID    string `json:"id" gorm:"uniqueIndex;not null"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SubjectID   uint   `json:"-" gorm:"index;not null"`
	SubjectRef  string `json:"subject_id" gorm:"index"` // public id of the parent subject
	CreatedBy   string `json:"created_by"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
