package models

// Room has no row-level occupant list; occupancy is derived from
// User.RoomID. Rooms carry no delete flag and are removed outright
// once empty.
type Room struct {
	ID   uint   `gorm:"primarykey"`
	Name string `gorm:"not null"`
}
