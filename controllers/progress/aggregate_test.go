package progressController

import (
	"testing"

	"edulan/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openAggregateDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:aggregatetest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Class{}, &models.Subject{}, &models.Chapter{},
		&models.Enrollment{}, &models.Progress{},
	))
	return db
}

func TestRecomputeEnrollmentEmptyClass(t *testing.T) {
	db := openAggregateDB(t)

	user := models.User{PublicID: uuid.NewString(), Email: "empty@test.local", Role: models.RoleStudent, Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	class := models.Class{PublicID: uuid.NewString(), Name: "Empty Class"}
	require.NoError(t, db.Create(&class).Error)

	// Subject exists but holds no chapters yet
	subject := models.Subject{PublicID: uuid.NewString(), Name: "Placeholder", ClassID: class.ID, ClassRef: class.PublicID}
	require.NoError(t, db.Create(&subject).Error)

	enrollment := models.Enrollment{
		PublicID: uuid.NewString(),
		UserID:   user.ID, UserRef: user.PublicID,
		ClassID: class.ID, ClassRef: class.PublicID,
	}
	require.NoError(t, db.Create(&enrollment).Error)

	completed, err := recomputeEnrollment(db, user.ID, subject.ID)
	require.NoError(t, err)
	assert.Nil(t, completed)

	require.NoError(t, db.First(&enrollment, enrollment.ID).Error)
	assert.Equal(t, 0.0, enrollment.Progress)
	assert.Equal(t, 0, enrollment.TotalChapters)
	assert.False(t, enrollment.Completed)
	assert.Nil(t, enrollment.CompletedAt)
}

func TestRecomputeEnrollmentWithoutEnrollment(t *testing.T) {
	db := openAggregateDB(t)

	user := models.User{PublicID: uuid.NewString(), Email: "noenroll@test.local", Role: models.RoleStudent, Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	class := models.Class{PublicID: uuid.NewString(), Name: "Class"}
	require.NoError(t, db.Create(&class).Error)
	subject := models.Subject{PublicID: uuid.NewString(), Name: "Subject", ClassID: class.ID, ClassRef: class.PublicID}
	require.NoError(t, db.Create(&subject).Error)

	// Progress without an enrollment is recorded but never aggregated
	completed, err := recomputeEnrollment(db, user.ID, subject.ID)
	require.NoError(t, err)
	assert.Nil(t, completed)
}
