package services

import (
	"github.com/a3803896/rent-split/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns all non-deleted users.
func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Scopes(models.NotDeleted).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Create(name string) (*models.User, error) {
	user := models.User{Name: name, Active: true}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete soft-deletes a user. Historical payments and shares keep
// referencing the row.
func (s *UserService) Delete(id uint) error {
	result := s.db.Model(&models.User{}).
		Where("id = ? AND is_delete = ?", id, false).
		Update("is_delete", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserService) AssignRoom(userID, roomID uint) error {
	result := s.db.Model(&models.User{}).
		Where("id = ? AND is_delete = ?", userID, false).
		Update("room_id", roomID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserService) UnbindRoom(userID uint) error {
	result := s.db.Model(&models.User{}).
		Where("id = ? AND is_delete = ?", userID, false).
		Update("room_id", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
