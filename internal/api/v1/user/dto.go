package user

import "time"

type CreateUserRequest struct {
	Name string `json:"name" binding:"required"`
}

type AssignRoomRequest struct {
	RoomID uint `json:"roomId" binding:"required"`
}

// UserResponse defines the response structure for a resident.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	RoomID    *uint     `json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
}
