package user_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a3803896/rent-split/internal/api/v1/user"
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
	user.RegisterRoutes(&router.RouterGroup, services.NewUserService(db))
	return router, db
}

func do(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndListUsers(t *testing.T) {
	router, _ := setupTest(t)

	w := do(router, http.MethodPost, "/users", map[string]string{"name": "alice"})
	assert.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Success bool `json:"success"`
		ID      uint `json:"id"`
	}
	json.Unmarshal(w.Body.Bytes(), &created)
	assert.True(t, created.Success)
	assert.NotZero(t, created.ID)

	// Name is required.
	w = do(router, http.MethodPost, "/users", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var users []user.UserResponse
	json.Unmarshal(w.Body.Bytes(), &users)
	assert.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Name)
	assert.True(t, users[0].Active)
	assert.Nil(t, users[0].RoomID)
}

func TestDeleteUser(t *testing.T) {
	router, db := setupTest(t)

	u := models.User{Name: "alice", Active: true}
	db.Create(&u)

	w := do(router, http.MethodDelete, fmt.Sprintf("/users/%d", u.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/users", nil)
	var users []user.UserResponse
	json.Unmarshal(w.Body.Bytes(), &users)
	assert.Empty(t, users)

	w = do(router, http.MethodDelete, fmt.Sprintf("/users/%d", u.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodDelete, "/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssignAndUnbindRoom(t *testing.T) {
	router, db := setupTest(t)

	room := models.Room{Name: "front"}
	db.Create(&room)
	u := models.User{Name: "alice", Active: true}
	db.Create(&u)

	// roomId is required.
	w := do(router, http.MethodPost, fmt.Sprintf("/users/%d/assign-room", u.ID), map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, fmt.Sprintf("/users/%d/assign-room", u.ID), map[string]interface{}{"roomId": room.ID})
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	db.First(&stored, u.ID)
	assert.NotNil(t, stored.RoomID)
	assert.Equal(t, room.ID, *stored.RoomID)

	w = do(router, http.MethodPost, fmt.Sprintf("/users/%d/unbind-room", u.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var unbound models.User
	db.First(&unbound, u.ID)
	assert.Nil(t, unbound.RoomID)

	w = do(router, http.MethodPost, "/users/999/assign-room", map[string]interface{}{"roomId": room.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodPost, "/users/999/unbind-room", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
