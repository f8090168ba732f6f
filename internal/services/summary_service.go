package services

import (
	"github.com/a3803896/rent-split/internal/models"
	"github.com/a3803896/rent-split/internal/split"

	"gorm.io/gorm"
)

type SummaryService struct {
	db *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

// UserSummary is one user's totals across all active payments.
type UserSummary struct {
	UserID uint    `json:"id"`
	Name   string  `json:"name"`
	Paid   float64 `json:"paid"`
	Owed   float64 `json:"owed"`
	Net    float64 `json:"net"`
}

type totalRow struct {
	ID    uint
	Total float64
}

// Compute builds the paid/owed/net summary for every non-deleted
// user. Paid counts non-deleted, non-archived payments by payer;
// owed counts non-deleted shares of such payments by recipient.
// Totals attributed to deleted or unknown users are dropped. The
// result is computed fresh on every call.
func (s *SummaryService) Compute() ([]UserSummary, error) {
	var users []models.User
	if err := s.db.Scopes(models.NotDeleted).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	summaries := make([]UserSummary, 0, len(users))
	index := make(map[uint]int, len(users))
	for i, user := range users {
		index[user.ID] = i
		summaries = append(summaries, UserSummary{UserID: user.ID, Name: user.Name})
	}

	var paidRows []totalRow
	err := s.db.Model(&models.Payment{}).
		Select("payer_id AS id, SUM(amount) AS total").
		Scopes(models.NotDeleted, models.NotArchived).
		Group("payer_id").
		Scan(&paidRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range paidRows {
		if i, ok := index[row.ID]; ok {
			summaries[i].Paid = row.Total
		}
	}

	var owedRows []totalRow
	err = s.db.Model(&models.PaymentUser{}).
		Select("payment_users.user_id AS id, SUM(payment_users.amount) AS total").
		Joins("JOIN payments ON payments.id = payment_users.payment_id").
		Where("payment_users.is_delete = ? AND payments.is_delete = ? AND payments.archive = ?", false, false, false).
		Group("payment_users.user_id").
		Scan(&owedRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range owedRows {
		if i, ok := index[row.ID]; ok {
			summaries[i].Owed = row.Total
		}
	}

	for i := range summaries {
		summaries[i].Net = split.Round2(summaries[i].Paid - summaries[i].Owed)
	}
	return summaries, nil
}
