package room

type CreateRoomRequest struct {
	Name string `json:"name" binding:"required"`
}

type OccupantResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	RoomID *uint  `json:"room_id"`
}

// RoomResponse is a room with its current active occupants.
type RoomResponse struct {
	ID    uint               `json:"id"`
	Name  string             `json:"name"`
	Users []OccupantResponse `json:"users"`
}
