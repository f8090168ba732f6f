package room_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a3803896/rent-split/internal/api/v1/room"
	"github.com/a3803896/rent-split/internal/models"
	"github.com/a3803896/rent-split/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Use in-memory SQLite for testing
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.Migrator().DropTable(&models.User{}, &models.Room{}, &models.Payment{}, &models.PaymentUser{})
	if err := db.AutoMigrate(&models.User{}, &models.Room{}, &models.Payment{}, &models.PaymentUser{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	router := gin.New()
	room.RegisterRoutes(&router.RouterGroup, services.NewRoomService(db))
	return router, db
}

func TestRoomsWithOccupants(t *testing.T) {
	router, db := setupTest(t)

	data, _ := json.Marshal(map[string]string{"name": "front"})
	req := httptest.NewRequest(http.MethodPost, "/rooms", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var created struct {
		ID uint `json:"id"`
	}
	json.Unmarshal(w.Body.Bytes(), &created)

	occupant := models.User{Name: "alice", Active: true, RoomID: &created.ID}
	db.Create(&occupant)

	req = httptest.NewRequest(http.MethodGet, "/rooms", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var rooms []room.RoomResponse
	json.Unmarshal(w.Body.Bytes(), &rooms)
	assert.Len(t, rooms, 1)
	assert.Equal(t, "front", rooms[0].Name)
	assert.Len(t, rooms[0].Users, 1)
	assert.Equal(t, "alice", rooms[0].Users[0].Name)
}

func TestDeleteRoomGuard(t *testing.T) {
	router, db := setupTest(t)

	r := models.Room{Name: "front"}
	db.Create(&r)
	occupant := models.User{Name: "alice", Active: true, RoomID: &r.ID}
	db.Create(&occupant)

	// Occupied room: rejected before the delete is attempted.
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/rooms/%d", r.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	db.Model(&models.User{}).Where("id = ?", occupant.ID).Update("is_delete", true)

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/rooms/%d", r.ID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/rooms/%d", r.ID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
