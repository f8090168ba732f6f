package models

import "time"

// User is a resident of the household. A user belongs to at most one
// room at a time; RoomID is nil while unassigned.
type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	Name      string `gorm:"not null"`
	Active    bool   `gorm:"default:true"`
	IsDelete  bool   `gorm:"default:false"`
	RoomID    *uint  `gorm:"index"`
}
