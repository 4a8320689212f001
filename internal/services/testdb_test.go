package services

import (
	"fmt"
	"testing"

	"github.com/collabhub-dev/collabhub/db"
	"github.com/collabhub-dev/collabhub/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database scoped to the test name and
// runs the production migrations against it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return database
}

func seedUser(t *testing.T, database *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "irrelevant",
		Role:         models.RoleUser,
		Department:   "Engineering",
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func seedEvent(t *testing.T, database *gorm.DB, title string) *models.Event {
	t.Helper()

	event := models.Event{Title: title}
	if err := database.Create(&event).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return &event
}

func seedColumn(t *testing.T, database *gorm.DB, event *models.Event, title string) *models.BoardColumn {
	t.Helper()

	column := models.BoardColumn{Title: title, EventID: event.ID}
	if err := database.Create(&column).Error; err != nil {
		t.Fatalf("seed column: %v", err)
	}
	return &column
}

func count(t *testing.T, database *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var n int64
	q := database.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
