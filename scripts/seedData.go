package main

import (
	"edulan/config"
	"edulan/database"
	"edulan/models"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seeds demo data for local development. Run explicitly:
//
//	go run scripts/seedData.go
//
// Collections that already have rows are left alone; seeding never happens
// as a side effect of serving requests.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount > 0 {
		log.Println("Users already present, skipping user seed.")
	} else {
		for _, seed := range []struct {
			email, name, role, password string
		}{
			{"admin@edulan.local", "Admin", models.RoleAdmin, "admin123"},
			{"student@edulan.local", "Demo Student", models.RoleStudent, "student123"},
		} {
			hashed, err := bcrypt.GenerateFromPassword([]byte(seed.password), config.AppConfig.SaltRound)
			if err != nil {
				log.Fatalf("Failed to hash seed password: %v", err)
			}
			user := models.User{
				PublicID: uuid.NewString(),
				Name:     seed.name,
				Email:    seed.email,
				Role:     seed.role,
				Password: string(hashed),
			}
			if err := db.Create(&user).Error; err != nil {
				log.Fatalf("Failed to seed user %s: %v", seed.email, err)
			}
			log.Printf("Seeded user %s (%s)", seed.email, seed.role)
		}
	}

	var classCount int64
	db.Model(&models.Class{}).Count(&classCount)
	if classCount > 0 {
		log.Println("Classes already present, skipping content tree seed.")
		return
	}

	class := models.Class{
		PublicID:    uuid.NewString(),
		Name:        "Class 10",
		Description: "Tenth grade",
		Grade:       "10",
	}
	if err := db.Create(&class).Error; err != nil {
		log.Fatalf("Failed to seed class: %v", err)
	}

	subject := models.Subject{
		PublicID:    uuid.NewString(),
		Name:        "Mathematics",
		Description: "Algebra and geometry",
		ClassID:     class.ID,
		ClassRef:    class.PublicID,
	}
	if err := db.Create(&subject).Error; err != nil {
		log.Fatalf("Failed to seed subject: %v", err)
	}

	chapter := models.Chapter{
		PublicID:    uuid.NewString(),
		Name:        "Linear Equations",
		Description: "Solving equations in one variable",
		SubjectID:   subject.ID,
		SubjectRef:  subject.PublicID,
	}
	if err := db.Create(&chapter).Error; err != nil {
		log.Fatalf("Failed to seed chapter: %v", err)
	}

	content := models.Content{
		PublicID:    uuid.NewString(),
		Title:       "Introduction (Khan Academy)",
		ContentType: "webpage",
		FilePath:    "https://www.khanacademy.org/math/algebra/one-variable-linear-equations",
		ChapterID:   chapter.ID,
		ChapterRef:  chapter.PublicID,
	}
	if err := db.Create(&content).Error; err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}

	log.Println("Seed data created successfully.")
}
