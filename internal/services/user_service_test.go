package services

import (
	"testing"

	"github.com/a3803896/rent-split/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestUserLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	created, err := svc.Create("alice")
	assert.NoError(t, err)
	assert.True(t, created.Active)
	assert.Nil(t, created.RoomID)

	users, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, users, 1)

	assert.NoError(t, svc.Delete(created.ID))

	users, err = svc.List()
	assert.NoError(t, err)
	assert.Empty(t, users)

	// The row persists with the flag set.
	var stored models.User
	db.First(&stored, created.ID)
	assert.True(t, stored.IsDelete)

	// Already deleted: zero rows affected.
	assert.ErrorIs(t, svc.Delete(created.ID), ErrNotFound)
}

func TestUserRoomBinding(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	room := seedRoom(t, db, "front")
	user := seedUser(t, db, "alice", nil)

	assert.NoError(t, svc.AssignRoom(user.ID, room.ID))
	var stored models.User
	db.First(&stored, user.ID)
	assert.NotNil(t, stored.RoomID)
	assert.Equal(t, room.ID, *stored.RoomID)

	assert.NoError(t, svc.UnbindRoom(user.ID))
	var unbound models.User
	db.First(&unbound, user.ID)
	assert.Nil(t, unbound.RoomID)

	assert.ErrorIs(t, svc.AssignRoom(999, room.ID), ErrNotFound)
	assert.ErrorIs(t, svc.UnbindRoom(999), ErrNotFound)
}
