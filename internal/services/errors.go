package services

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrRoomOccupied = errors.New("room still has active occupants")
)
