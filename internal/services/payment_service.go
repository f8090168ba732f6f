package services

import (
	"github.com/a3803896/rent-split/internal/models"
	"github.com/a3803896/rent-split/internal/split"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// CreatePaymentInput carries an already-validated create request.
type CreatePaymentInput struct {
	Date       string
	Category   string
	Amount     float64
	PayerID    uint
	Note       string
	SplitBy    models.SplitMode
	SplitUsers []uint
	SplitRooms []uint
}

// Create computes the split and persists the payment together with
// all of its shares in a single transaction. Room occupancy is
// resolved at this moment; it is not snapshotted on the shares.
func (s *PaymentService) Create(input CreatePaymentInput) (*models.Payment, error) {
	var shares []split.Share
	switch input.SplitBy {
	case models.SplitByRoom:
		rooms := make([]split.RoomOccupants, 0, len(input.SplitRooms))
		for _, roomID := range input.SplitRooms {
			var occupantIDs []uint
			if err := s.db.Model(&models.User{}).
				Where("room_id = ? AND is_delete = ?", roomID, false).
				Order("id").
				Pluck("id", &occupantIDs).Error; err != nil {
				return nil, err
			}
			rooms = append(rooms, split.RoomOccupants{RoomID: roomID, UserIDs: occupantIDs})
		}
		shares = split.ByRooms(input.Amount, rooms)
	default:
		shares = split.ByUsers(input.Amount, input.SplitUsers)
	}

	payment := models.Payment{
		Date:     input.Date,
		Category: input.Category,
		Amount:   input.Amount,
		PayerID:  input.PayerID,
		Note:     input.Note,
		SplitBy:  input.SplitBy,
	}
	if input.SplitBy == models.SplitByRoom {
		payment.Rooms = models.RoomIDList(input.SplitRooms)
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for _, share := range shares {
		row := models.PaymentUser{
			PaymentID: payment.ID,
			UserID:    share.UserID,
			Amount:    share.Amount,
			IsFixed:   true,
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

// PaymentListItem is one row of the plain payment listing.
type PaymentListItem struct {
	ID        uint    `json:"id"`
	Date      string  `json:"date"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	PayerID   uint    `json:"payer_id"`
	Note      string  `json:"note"`
	PayerName string  `json:"payer_name"`
}

// List returns active, non-archived payments with the payer's name,
// newest first.
func (s *PaymentService) List() ([]PaymentListItem, error) {
	var items []PaymentListItem
	err := s.db.Model(&models.Payment{}).
		Select("payments.id, payments.date, payments.category, payments.amount, payments.payer_id, payments.note, users.name AS payer_name").
		Joins("JOIN users ON users.id = payments.payer_id").
		Where("payments.is_delete = ? AND payments.archive = ?", false, false).
		Order("payments.date DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SplitUser is one share in the flat breakdown of a payment. RoomID
// is the recipient's room at read time, not at split time.
type SplitUser struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	RoomID *uint   `json:"room_id"`
}

// RoomGroup is the per-room view of a room-mode payment's shares.
type RoomGroup struct {
	RoomID   uint        `json:"room_id"`
	RoomName string      `json:"room_name"`
	Users    []SplitUser `json:"users"`
}

// PaymentWithSplits is one payment with its display-ready breakdown.
type PaymentWithSplits struct {
	ID           uint             `json:"id"`
	Date         string           `json:"date"`
	Category     string           `json:"category"`
	Amount       float64          `json:"amount"`
	Note         string           `json:"note"`
	PayerID      uint             `json:"payer_id"`
	SplitBy      models.SplitMode `json:"split_by"`
	PayerName    string           `json:"payer_name"`
	SplitUsers   []SplitUser      `json:"split_users"`
	SplitPerRoom []RoomGroup      `json:"split_per_room"`
}

type paymentRow struct {
	ID        uint
	Date      string
	Category  string
	Amount    float64
	Note      string
	PayerID   uint
	SplitBy   models.SplitMode
	Rooms     models.RoomIDList
	PayerName string
}

type shareRow struct {
	PaymentID uint
	UserID    uint
	Amount    float64
	UserName  string
	RoomID    *uint
}

// ListWithSplits returns payments filtered by the archive flag, each
// with the flat share list and, for room-mode payments, a per-room
// grouping. The grouping re-reads the stored room list against each
// recipient's current room, so a user who moved rooms after the split
// shows up under the new room. A payment whose stored room list fails
// to parse gets an empty grouping instead of failing the listing.
func (s *PaymentService) ListWithSplits(archived bool) ([]PaymentWithSplits, error) {
	var payments []paymentRow
	err := s.db.Model(&models.Payment{}).
		Select("payments.id, payments.date, payments.category, payments.amount, payments.note, payments.payer_id, payments.split_by, payments.rooms, users.name AS payer_name").
		Joins("JOIN users ON users.id = payments.payer_id").
		Where("payments.is_delete = ? AND payments.archive = ?", false, archived).
		Order("payments.date DESC").
		Scan(&payments).Error
	if err != nil {
		return nil, err
	}

	var shareRows []shareRow
	err = s.db.Model(&models.PaymentUser{}).
		Select("payment_users.payment_id, payment_users.user_id, payment_users.amount, users.name AS user_name, users.room_id").
		Joins("JOIN users ON users.id = payment_users.user_id").
		Where("payment_users.is_delete = ?", false).
		Order("payment_users.id").
		Scan(&shareRows).Error
	if err != nil {
		return nil, err
	}

	sharesByPayment := make(map[uint][]SplitUser)
	for _, row := range shareRows {
		sharesByPayment[row.PaymentID] = append(sharesByPayment[row.PaymentID], SplitUser{
			ID:     row.UserID,
			Name:   row.UserName,
			Amount: row.Amount,
			RoomID: row.RoomID,
		})
	}

	roomNames, err := s.roomNames()
	if err != nil {
		return nil, err
	}

	result := make([]PaymentWithSplits, 0, len(payments))
	for _, p := range payments {
		item := PaymentWithSplits{
			ID:         p.ID,
			Date:       p.Date,
			Category:   p.Category,
			Amount:     p.Amount,
			Note:       p.Note,
			PayerID:    p.PayerID,
			SplitBy:    p.SplitBy,
			PayerName:  p.PayerName,
			SplitUsers: sharesByPayment[p.ID],
		}
		if item.SplitUsers == nil {
			item.SplitUsers = []SplitUser{}
		}
		if p.SplitBy == models.SplitByRoom {
			item.SplitPerRoom = groupByRoom(p.Rooms, item.SplitUsers, roomNames)
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *PaymentService) roomNames() (map[uint]string, error) {
	var rooms []models.Room
	if err := s.db.Find(&rooms).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(rooms))
	for _, room := range rooms {
		names[room.ID] = room.Name
	}
	return names, nil
}

func groupByRoom(roomIDs models.RoomIDList, shares []SplitUser, roomNames map[uint]string) []RoomGroup {
	groups := make([]RoomGroup, 0, len(roomIDs))
	for _, roomID := range roomIDs {
		name, ok := roomNames[roomID]
		if !ok {
			name = "unknown room"
		}
		group := RoomGroup{RoomID: roomID, RoomName: name, Users: []SplitUser{}}
		for _, share := range shares {
			if share.RoomID != nil && *share.RoomID == roomID {
				group.Users = append(group.Users, share)
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// Delete soft-deletes a payment and cascades to its shares as one
// unit.
func (s *PaymentService) Delete(id uint) error {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	result := tx.Model(&models.Payment{}).
		Where("id = ? AND is_delete = ?", id, false).
		Update("is_delete", true)
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return ErrNotFound
	}

	if err := tx.Model(&models.PaymentUser{}).
		Where("payment_id = ?", id).
		Update("is_delete", true).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}
	zap.L().Info("payment deleted", zap.Uint("payment_id", id))
	return nil
}

// SetArchived toggles a payment's archive flag.
func (s *PaymentService) SetArchived(id uint, archived bool) error {
	result := s.db.Model(&models.Payment{}).
		Where("id = ? AND is_delete = ?", id, false).
		Update("archive", archived)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
