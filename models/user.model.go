package models

import "gorm.io/gorm"

// Roles a user can hold. Everything else is rejected at signup.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	PublicID  string `json:"id" gorm:"uniqueIndex;not null"`
	Name      string `json:"name" gorm:"default:''"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Role      string `json:"role" gorm:"default:'student'"`
	Password  string `json:"-" gorm:"not null"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
