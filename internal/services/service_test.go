package services

import (
	"testing"

	"github.com/a3803896/rent-split/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Use in-memory SQLite for testing
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	// Drop tables if exist to ensure clean state
	db.Migrator().DropTable(&models.User{}, &models.Room{}, &models.Payment{}, &models.PaymentUser{})

	if err := db.AutoMigrate(&models.User{}, &models.Room{}, &models.Payment{}, &models.PaymentUser{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, roomID *uint) models.User {
	t.Helper()

	user := models.User{Name: name, Active: true, RoomID: roomID}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %q: %v", name, err)
	}
	return user
}

func seedRoom(t *testing.T, db *gorm.DB, name string) models.Room {
	t.Helper()

	room := models.Room{Name: name}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to seed room %q: %v", name, err)
	}
	return room
}

func ptr(id uint) *uint { return &id }
