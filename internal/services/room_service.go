package services

import (
	"github.com/a3803896/rent-split/internal/models"

	"gorm.io/gorm"
)

type RoomService struct {
	db *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

// RoomWithOccupants pairs a room with its current non-deleted
// occupants.
type RoomWithOccupants struct {
	Room  models.Room
	Users []models.User
}

func (s *RoomService) List() ([]RoomWithOccupants, error) {
	var rooms []models.Room
	if err := s.db.Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}

	var users []models.User
	if err := s.db.Scopes(models.NotDeleted).Where("room_id IS NOT NULL").Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	byRoom := make(map[uint][]models.User)
	for _, u := range users {
		byRoom[*u.RoomID] = append(byRoom[*u.RoomID], u)
	}

	result := make([]RoomWithOccupants, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, RoomWithOccupants{Room: room, Users: byRoom[room.ID]})
	}
	return result, nil
}

func (s *RoomService) Create(name string) (*models.Room, error) {
	room := models.Room{Name: name}
	if err := s.db.Create(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// Delete removes a room. Rejected while any non-deleted occupant is
// still assigned to it.
func (s *RoomService) Delete(id uint) error {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("room_id = ? AND is_delete = ?", id, false).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrRoomOccupied
	}

	result := s.db.Delete(&models.Room{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
