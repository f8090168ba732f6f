package models

import "time"

type SplitMode string

const (
	SplitByUser SplitMode = "user"
	SplitByRoom SplitMode = "room"
)

func (m SplitMode) Valid() bool {
	return m == SplitByUser || m == SplitByRoom
}

// Payment is one shared expense. Fields are immutable after creation;
// only the Archive and IsDelete flags change afterwards. Rooms is set
// only for room-mode splits and holds the room ids the amount was
// divided across at creation time.
type Payment struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	Date      string     `gorm:"not null"`
	Category  string     `gorm:"type:varchar(100)"`
	Amount    float64    `gorm:"type:decimal(12,2);not null"`
	PayerID   uint       `gorm:"index;not null"`
	Note      string     `gorm:"type:text"`
	Archive   bool       `gorm:"default:false"`
	IsDelete  bool       `gorm:"default:false"`
	SplitBy   SplitMode  `gorm:"type:varchar(10);not null;default:'user'"`
	Rooms     RoomIDList `gorm:"type:text"`
}

// PaymentUser is one user's computed share of a payment. IsFixed is
// reserved for manual overrides; computed shares always set it.
type PaymentUser struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	PaymentID uint    `gorm:"index;not null"`
	UserID    uint    `gorm:"index;not null"`
	Amount    float64 `gorm:"type:decimal(12,2)"`
	IsFixed   bool    `gorm:"default:false"`
	IsDelete  bool    `gorm:"default:false"`
}
